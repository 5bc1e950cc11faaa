package schedules

import (
	"family-care/internal/domain/resource"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/schedule", func(sr chi.Router) {
		resource.Mount(sr, svc, resource.Routes{
			Key:            "schedule",
			Plural:         "schedules",
			AddPath:        "/add",
			ListPath:       "/list",
			Update:         true,
			Delete:         true,
			AddedMessage:   "Schedule added",
			UpdatedMessage: "Schedule updated",
		}, log)
	})
}
