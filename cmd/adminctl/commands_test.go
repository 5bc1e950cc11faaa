package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"family-care/internal/adapters/auth/token"
	"family-care/internal/router"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	iss, err := token.NewIssuer("adminctl-test", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: iss,
		TokenIssuer:  iss,
		AdminEmails:  []string{"root@example.com"},
	}))
	t.Cleanup(ts.Close)
	return ts
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func register(t *testing.T, baseURL, email string) {
	t.Helper()
	b, _ := json.Marshal(map[string]string{"name": "n", "email": email, "password": "pw"})
	res, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d", res.StatusCode)
	}
}

func TestAdminctl_LoginUsersReportDelete(t *testing.T) {
	ts := newAPI(t)
	register(t, ts.URL, "root@example.com")
	register(t, ts.URL, "other@example.com")

	out, err := run(t, "login", "--server", ts.URL, "--email", "root@example.com", "--password", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	tok := strings.TrimSpace(out)
	if tok == "" {
		t.Fatalf("expected token output")
	}

	out, err = run(t, "users", "--server", ts.URL, "--token", tok)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(out, "other@example.com") || strings.Contains(out, "password") {
		t.Fatalf("unexpected users output: %s", out)
	}

	out, err = run(t, "report", "--server", ts.URL, "--token", tok)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out, `"totalUsers": 2`) {
		t.Fatalf("unexpected report: %s", out)
	}

	out, err = run(t, "delete-user", "2", "--server", ts.URL, "--token", tok)
	if err != nil {
		t.Fatalf("delete-user: %v", err)
	}
	if strings.TrimSpace(out) != "Deleted" {
		t.Fatalf("unexpected delete output %q", out)
	}
}

func TestAdminctl_Errors(t *testing.T) {
	ts := newAPI(t)
	register(t, ts.URL, "plain@example.com")

	if _, err := run(t, "users", "--server", ts.URL, "--token", ""); err == nil {
		t.Fatalf("expected missing token error")
	}

	out, err := run(t, "login", "--server", ts.URL, "--email", "plain@example.com", "--password", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	_, err = run(t, "report", "--server", ts.URL, "--token", strings.TrimSpace(out))
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected 403 for non-admin, got %v", err)
	}

	if _, err := run(t, "delete-user", "abc", "--server", ts.URL, "--token", "x"); err == nil {
		t.Fatalf("expected invalid id error")
	}
}
