package reports

import (
	"net/http"

	"family-care/internal/platform/httpjson"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta GET /reports; r ya está en /admin y protegido por rol.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	r.Get("/reports", reportHandler(svc, log))
}

func reportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Report(r.Context())
		if err != nil {
			log.Error("report failed", map[string]any{"err": err})
			httpjson.Message(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpjson.Write(w, http.StatusOK, rep)
	}
}
