package feedback

import (
	"context"
	"testing"

	"family-care/internal/domain/resource"
)

type sliceRepo struct{ items []Feedback }

func (r *sliceRepo) Create(ctx context.Context, f Feedback) (Feedback, error) {
	f.ID = int64(len(r.items) + 1)
	r.items = append(r.items, f)
	return f, nil
}
func (r *sliceRepo) ListByOwner(ctx context.Context, userID int64) ([]Feedback, error) {
	return r.items, nil
}
func (r *sliceRepo) Update(ctx context.Context, id int64, fn func(*Feedback) error) (Feedback, error) {
	return Feedback{}, resource.ErrNotFound
}
func (r *sliceRepo) Delete(ctx context.Context, id int64) (bool, error) { return false, nil }
func (r *sliceRepo) All(ctx context.Context) ([]Feedback, error)        { return r.items, nil }
func (r *sliceRepo) Count(ctx context.Context) (int, error)             { return len(r.items), nil }

func TestAdd_FeedbackAlias(t *testing.T) {
	svc := NewService(&sliceRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{"message", map[string]any{"message": "hola"}, "hola"},
		{"alias", map[string]any{"feedback": "legacy"}, "legacy"},
		{"message wins", map[string]any{"message": "new", "feedback": "old"}, "new"},
		{"alias any case", map[string]any{"Feedback": "capital"}, "capital"},
		{"message any case wins", map[string]any{"MESSAGE": "upper", "feedback": "old"}, "upper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := svc.Add(ctx, tt.fields)
			if err != nil {
				t.Fatalf("Add returned error: %v", err)
			}
			if f.Message != tt.want {
				t.Fatalf("message = %q, want %q", f.Message, tt.want)
			}
			if f.CreatedAt.IsZero() {
				t.Fatalf("createdAt not set")
			}
		})
	}
}
