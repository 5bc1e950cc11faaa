package reports

import (
	"context"
	"errors"
	"testing"

	"family-care/internal/domain/feedback"
	"family-care/internal/domain/payments"
)

type fixedCounter struct {
	n   int
	err error
}

func (c fixedCounter) Count(ctx context.Context) (int, error) { return c.n, c.err }

type paySource struct{ items []payments.Payment }

func (s paySource) Count(ctx context.Context) (int, error) { return len(s.items), nil }
func (s paySource) All(ctx context.Context) ([]payments.Payment, error) {
	return s.items, nil
}

type fbSource struct{ items []feedback.Feedback }

func (s fbSource) Count(ctx context.Context) (int, error) { return len(s.items), nil }
func (s fbSource) All(ctx context.Context) ([]feedback.Feedback, error) {
	return s.items, nil
}

func TestReport_Totals(t *testing.T) {
	svc := NewService(Sources{
		Users:         fixedCounter{n: 3},
		FamilyMembers: fixedCounter{n: 2},
		Pets:          fixedCounter{n: 1},
		Schedules:     fixedCounter{n: 4},
		Payments:      paySource{items: []payments.Payment{{Amount: 10}, {Amount: 15.5}}},
		Feedback:      fbSource{items: []feedback.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 3}}},
	})

	rep, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	want := Report{
		TotalUsers:         3,
		TotalPets:          1,
		TotalPayments:      2,
		TotalSchedules:     4,
		TotalFamilyMembers: 2,
		TotalFeedback:      3,
		TotalRevenue:       25.5,
		AverageRating:      4,
	}
	if rep != want {
		t.Fatalf("report = %#v, want %#v", rep, want)
	}
}

func TestReport_EmptyAggregatesAreZero(t *testing.T) {
	svc := NewService(Sources{
		Users:         fixedCounter{},
		FamilyMembers: fixedCounter{},
		Pets:          fixedCounter{},
		Schedules:     fixedCounter{},
		Payments:      paySource{},
		Feedback:      fbSource{},
	})

	rep, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if rep != (Report{}) {
		t.Fatalf("expected zero report, got %#v", rep)
	}
}

func TestReport_CountError(t *testing.T) {
	svc := NewService(Sources{
		Users:         fixedCounter{err: errors.New("boom")},
		FamilyMembers: fixedCounter{},
		Pets:          fixedCounter{},
		Schedules:     fixedCounter{},
		Payments:      paySource{},
		Feedback:      fbSource{},
	})

	if _, err := svc.Report(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
