package feedback

import (
	"family-care/internal/domain/resource"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /support/feedback (alta, responde solo {message}) y
// /support/feedback/list/{userID}.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/support", func(sr chi.Router) {
		resource.Mount(sr, svc, resource.Routes{
			Key:          "feedback",
			Plural:       "feedback",
			AddPath:      "/feedback",
			ListPath:     "/feedback/list",
			AddedMessage: "Feedback received",
			OmitCreated:  true,
		}, log)
	})
}
