package httpjson

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestWrite_OK(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusCreated, map[string]int{"id": 3})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type = %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"id":3}` {
		t.Fatalf("body = %s", got)
	}
}

func TestWrite_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusOK, map[string]float64{"x": math.Inf(1)})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"internal error"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestDecodeFields_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	fields, err := DecodeFields(req)
	if err != nil || fields == nil || len(fields) != 0 {
		t.Fatalf("expected empty map, got %#v err=%v", fields, err)
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"5", 5, true},
		{"05", 5, true},
		{" 7 ", 7, true},
		{"abc", 0, false},
		{"0", 0, false},
		{"-2", 0, false},
	}
	for _, tc := range cases {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", tc.raw)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		id, err := ParseID(req, "id")
		if tc.ok && (err != nil || id != tc.want) {
			t.Errorf("ParseID(%q) = %d, %v; want %d", tc.raw, id, err, tc.want)
		}
		if !tc.ok && err != ErrInvalidID {
			t.Errorf("ParseID(%q) err = %v, want ErrInvalidID", tc.raw, err)
		}
	}
}
