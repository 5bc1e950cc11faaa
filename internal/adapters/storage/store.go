// Package storage define el conjunto de colecciones que comparte la app.
// memory.NewStore y sqlstore.NewStore devuelven la misma forma.
package storage

import (
	"family-care/internal/domain/family"
	"family-care/internal/domain/feedback"
	"family-care/internal/domain/payments"
	"family-care/internal/domain/pets"
	"family-care/internal/domain/schedules"
	"family-care/internal/domain/users"
)

type Store struct {
	Users     users.Repository
	Family    family.Repository
	Pets      pets.Repository
	Schedules schedules.Repository
	Payments  payments.Repository
	Feedback  feedback.Repository
}
