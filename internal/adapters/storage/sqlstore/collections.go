package sqlstore

import (
	"family-care/internal/domain/family"
	"family-care/internal/domain/feedback"
	"family-care/internal/domain/payments"
	"family-care/internal/domain/pets"
	"family-care/internal/domain/schedules"
)

func NewFamilyRepo(db *DB) family.Repository {
	return &table[family.Member, *family.Member]{
		db:   db,
		name: "family_members",
		cols: []string{"user_id", "name", "age", "relation"},
		values: func(m *family.Member) []any {
			return []any{m.UserID, m.Name, m.Age, m.Relation}
		},
		dest: func(m *family.Member) []any {
			return []any{&m.UserID, &m.Name, &m.Age, &m.Relation}
		},
	}
}

func NewPetsRepo(db *DB) pets.Repository {
	return &table[pets.Pet, *pets.Pet]{
		db:   db,
		name: "pets",
		cols: []string{"user_id", "name", "type", "age"},
		values: func(p *pets.Pet) []any {
			return []any{p.UserID, p.Name, p.Type, p.Age}
		},
		dest: func(p *pets.Pet) []any {
			return []any{&p.UserID, &p.Name, &p.Type, &p.Age}
		},
	}
}

func NewSchedulesRepo(db *DB) schedules.Repository {
	return &table[schedules.Schedule, *schedules.Schedule]{
		db:   db,
		name: "schedules",
		cols: []string{"user_id", "type", "member_id", "name", "pickup", "dropoff"},
		values: func(s *schedules.Schedule) []any {
			return []any{s.UserID, s.Type, s.MemberID, s.Name, s.Pickup, s.Dropoff}
		},
		dest: func(s *schedules.Schedule) []any {
			return []any{&s.UserID, &s.Type, &s.MemberID, &s.Name, &s.Pickup, &s.Dropoff}
		},
	}
}

func NewPaymentsRepo(db *DB) payments.Repository {
	return &table[payments.Payment, *payments.Payment]{
		db:   db,
		name: "payments",
		cols: []string{"user_id", "amount", "service", "status", "reference", "created_at"},
		values: func(p *payments.Payment) []any {
			return []any{p.UserID, p.Amount, p.Service, p.Status, p.Reference, p.CreatedAt}
		},
		dest: func(p *payments.Payment) []any {
			return []any{&p.UserID, &p.Amount, &p.Service, &p.Status, &p.Reference, &p.CreatedAt}
		},
	}
}

func NewFeedbackRepo(db *DB) feedback.Repository {
	return &table[feedback.Feedback, *feedback.Feedback]{
		db:   db,
		name: "feedback",
		cols: []string{"user_id", "message", "rating", "created_at"},
		values: func(f *feedback.Feedback) []any {
			return []any{f.UserID, f.Message, f.Rating, f.CreatedAt}
		},
		dest: func(f *feedback.Feedback) []any {
			return []any{&f.UserID, &f.Message, &f.Rating, &f.CreatedAt}
		},
	}
}
