package sqlstore

import "family-care/internal/adapters/storage"

func NewStore(db *DB) *storage.Store {
	return &storage.Store{
		Users:     NewUsersRepo(db),
		Family:    NewFamilyRepo(db),
		Pets:      NewPetsRepo(db),
		Schedules: NewSchedulesRepo(db),
		Payments:  NewPaymentsRepo(db),
		Feedback:  NewFeedbackRepo(db),
	}
}
