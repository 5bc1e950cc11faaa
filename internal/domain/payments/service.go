package payments

import (
	"errors"
	"math"
	"time"

	"family-care/internal/domain/resource"

	"github.com/google/uuid"
)

// MaxAmount es el máximo de un pago individual.
const MaxAmount = 1e9

var ErrInvalidAmount = errors.New("amount must be between 0 and 1e9")

type Service = resource.Service[Payment, *Payment]

func NewService(repo Repository) *Service {
	return resource.NewService[Payment](repo, resource.Options[Payment]{
		ReadOnly: []string{"status", "reference", "createdAt"},
		OnCreate: func(p *Payment, now time.Time) {
			p.Status = StatusPaid
			p.Reference = uuid.NewString()
			p.CreatedAt = now.UTC()
		},
		Validate: validate,
	})
}

func validate(p *Payment) error {
	if math.IsNaN(p.Amount) || p.Amount < 0 || p.Amount > MaxAmount {
		return ErrInvalidAmount
	}
	return nil
}
