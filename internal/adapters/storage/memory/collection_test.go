package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"family-care/internal/domain/pets"
)

func TestCollection_OrderAndOwnerFilter(t *testing.T) {
	c := NewCollection[pets.Pet]()
	ctx := context.Background()

	for i, owner := range []int64{1, 2, 1, 1} {
		p := pets.Pet{Name: string(rune('a' + i))}
		p.UserID = owner
		if _, err := c.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, _ := c.ListByOwner(ctx, 1)
	if len(got) != 3 || got[0].Name != "a" || got[1].Name != "c" || got[2].Name != "d" {
		t.Fatalf("unexpected owner list: %#v", got)
	}
	if none, _ := c.ListByOwner(ctx, 99); len(none) != 0 || none == nil {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestCollection_UpdateErrorLeavesItem(t *testing.T) {
	c := NewCollection[pets.Pet]()
	ctx := context.Background()

	p, _ := c.Create(ctx, pets.Pet{Name: "milo"})
	boom := errors.New("boom")
	_, err := c.Update(ctx, p.ID, func(rec *pets.Pet) error {
		rec.Name = "changed"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	all, _ := c.All(ctx)
	if all[0].Name != "milo" {
		t.Fatalf("item mutated by failed update: %#v", all[0])
	}

	if _, err := c.Update(ctx, 1234, func(*pets.Pet) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollection_Delete(t *testing.T) {
	c := NewCollection[pets.Pet]()
	ctx := context.Background()

	a, _ := c.Create(ctx, pets.Pet{Name: "a"})
	c.Create(ctx, pets.Pet{Name: "b"})

	if ok, _ := c.Delete(ctx, a.ID); !ok {
		t.Fatalf("expected delete to report removal")
	}
	if ok, _ := c.Delete(ctx, a.ID); ok {
		t.Fatalf("second delete must report false")
	}
	if n, _ := c.Count(ctx); n != 1 {
		t.Fatalf("expected 1 item, got %d", n)
	}
}

func TestCollection_ConcurrentCreateAndUpdate(t *testing.T) {
	c := NewCollection[pets.Pet]()
	ctx := context.Background()

	counter, _ := c.Create(ctx, pets.Pet{Age: ""})

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = c.Create(ctx, pets.Pet{Name: "x"})
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Update(ctx, counter.ID, func(p *pets.Pet) error {
				p.Age += "1"
				return nil
			})
		}()
	}
	wg.Wait()

	all, _ := c.All(ctx)
	if len(all) != n+1 {
		t.Fatalf("expected %d items, got %d", n+1, len(all))
	}
	seen := map[int64]bool{}
	for _, p := range all {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
	if len(all[0].Age) != n {
		t.Fatalf("lost updates: got %d of %d", len(all[0].Age), n)
	}
}

func TestUserRepo_ListByEmailKeepsOrder(t *testing.T) {
	r := NewUserRepo()
	ctx := context.Background()

	a, _ := r.Create(ctx, usersFixture("a@x.com", "first"))
	r.Create(ctx, usersFixture("b@x.com", "other"))
	c, _ := r.Create(ctx, usersFixture("a@x.com", "second"))

	got, _ := r.ListByEmail(ctx, "a@x.com")
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Fatalf("unexpected list: %#v", got)
	}

	if ok, _ := r.Delete(ctx, a.ID); !ok {
		t.Fatalf("expected removal")
	}
	if n, _ := r.Count(ctx); n != 2 {
		t.Fatalf("expected 2 users, got %d", n)
	}
}
