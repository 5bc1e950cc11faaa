package pets

import (
	"family-care/internal/domain/resource"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /pets/{add,list/{userID},update/{id},delete/{id}}.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		resource.Mount(pr, svc, resource.Routes{
			Key:            "pet",
			Plural:         "pets",
			AddPath:        "/add",
			ListPath:       "/list",
			Update:         true,
			Delete:         true,
			AddedMessage:   "Pet added",
			UpdatedMessage: "Pet updated",
		}, log)
	})
}
