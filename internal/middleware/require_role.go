package middleware

import (
	"net/http"

	"family-care/internal/platform/httpjson"
	"family-care/internal/ports/auth"
)

// RequireRole corta con 401 si no hay claims y con 403 si el rol no coincide.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := GetClaims(r.Context())
			if !ok || c.UserID == "" {
				httpjson.Message(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if c.Role != role {
				httpjson.Message(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(auth.RoleAdmin)(next)
}
