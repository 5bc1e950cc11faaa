package payments

import (
	"context"
	"errors"
	"math"
	"testing"

	"family-care/internal/domain/resource"

	"github.com/google/uuid"
)

type sliceRepo struct{ items []Payment }

func (r *sliceRepo) Create(ctx context.Context, p Payment) (Payment, error) {
	p.ID = int64(len(r.items) + 1)
	r.items = append(r.items, p)
	return p, nil
}
func (r *sliceRepo) ListByOwner(ctx context.Context, userID int64) ([]Payment, error) {
	return r.items, nil
}
func (r *sliceRepo) Update(ctx context.Context, id int64, fn func(*Payment) error) (Payment, error) {
	return Payment{}, resource.ErrNotFound
}
func (r *sliceRepo) Delete(ctx context.Context, id int64) (bool, error) { return false, nil }
func (r *sliceRepo) All(ctx context.Context) ([]Payment, error)         { return r.items, nil }
func (r *sliceRepo) Count(ctx context.Context) (int, error)             { return len(r.items), nil }

func TestPay_ServerSideFields(t *testing.T) {
	svc := NewService(&sliceRepo{})

	p, err := svc.Add(context.Background(), map[string]any{
		"userId":    "7",
		"amount":    "12.5",
		"service":   "Pick-Up and Drop-Off",
		"status":    "Failed",
		"reference": "client-ref",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if p.Status != StatusPaid {
		t.Fatalf("status = %q, want %q", p.Status, StatusPaid)
	}
	if _, err := uuid.Parse(p.Reference); err != nil {
		t.Fatalf("reference is not a uuid: %q", p.Reference)
	}
	if p.Amount != 12.5 || p.UserID != 7 || p.CreatedAt.IsZero() {
		t.Fatalf("unexpected payment: %#v", p)
	}
}

func TestPay_AmountBounds(t *testing.T) {
	repo := &sliceRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	for _, amount := range []any{1e308, -1, MaxAmount + 1, "NaN", math.Inf(1)} {
		_, err := svc.Add(ctx, map[string]any{"userId": 1, "amount": amount})
		if !errors.Is(err, resource.ErrInvalidInput) || !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if len(repo.items) != 0 {
		t.Fatalf("rejected payments stored: %#v", repo.items)
	}

	for _, amount := range []any{0, MaxAmount} {
		if _, err := svc.Add(ctx, map[string]any{"userId": 1, "amount": amount}); err != nil {
			t.Fatalf("amount %v: unexpected error %v", amount, err)
		}
	}
}
