// Package httpjson agrupa los helpers JSON que antes estaban duplicados en cada
// handler de dominio.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var ErrInvalidID = errors.New("invalid id")

// MessageResponse es el cuerpo de error (y de algunos OK) de toda la API.
type MessageResponse struct {
	Message string `json:"message"`
}

// Write serializa v antes de escribir el status: si v no es JSON válido
// (p.ej. un float Inf) responde 500 en lugar de un 200 vacío.
func Write(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		b, _ = json.Marshal(MessageResponse{Message: "internal error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

func Message(w http.ResponseWriter, status int, msg string) {
	Write(w, status, MessageResponse{Message: msg})
}

// DecodeFields lee el body como objeto JSON genérico. Un body vacío equivale a {}.
func DecodeFields(r *http.Request) (map[string]any, error) {
	fields := map[string]any{}
	if r.Body == nil {
		return fields, nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Decode lee el body en un struct tipado.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return io.EOF
	}
	return json.NewDecoder(r.Body).Decode(dst)
}

// ParseID convierte un URL param a int64. Los ids se normalizan en el borde:
// "5" y "05" son el mismo id; "abc" no es un id.
func ParseID(r *http.Request, param string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
