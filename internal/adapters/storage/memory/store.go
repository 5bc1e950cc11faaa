package memory

import (
	"family-care/internal/adapters/storage"
	"family-care/internal/domain/family"
	"family-care/internal/domain/feedback"
	"family-care/internal/domain/payments"
	"family-care/internal/domain/pets"
	"family-care/internal/domain/schedules"
)

// NewStore crea un store vacío. Cada llamada es independiente (un store por
// proceso en main, uno por test en los tests).
func NewStore() *storage.Store {
	return &storage.Store{
		Users:     NewUserRepo(),
		Family:    NewCollection[family.Member](),
		Pets:      NewCollection[pets.Pet](),
		Schedules: NewCollection[schedules.Schedule](),
		Payments:  NewCollection[payments.Payment](),
		Feedback:  NewCollection[feedback.Feedback](),
	}
}
