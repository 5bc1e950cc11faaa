package payments

import (
	"family-care/internal/domain/resource"
	"family-care/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /payment/pay y /payment/list/{userID}. Los pagos no se
// editan ni se borran.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/payment", func(pr chi.Router) {
		resource.Mount(pr, svc, resource.Routes{
			Key:          "payment",
			Plural:       "payments",
			AddPath:      "/pay",
			ListPath:     "/list",
			AddedMessage: "Payment successful",
		}, log)
	})
}
