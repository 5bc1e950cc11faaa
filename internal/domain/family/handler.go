package family

import (
	"family-care/internal/domain/resource"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/family", func(fr chi.Router) {
		resource.Mount(fr, svc, resource.Routes{
			Key:            "member",
			Plural:         "members",
			AddPath:        "/add",
			ListPath:       "/list",
			Update:         true,
			Delete:         true,
			AddedMessage:   "Family member added",
			UpdatedMessage: "Family member updated",
		}, log)
	})
}
