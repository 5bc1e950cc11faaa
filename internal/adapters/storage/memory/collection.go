package memory

import (
	"context"
	"sync"

	"family-care/internal/domain/resource"
)

var (
	ErrNotFound = resource.ErrNotFound
)

// Collection es una secuencia ordenada por inserción protegida por un RWMutex.
// Los IDs salen de un contador propio: estrictamente crecientes, nunca reusados.
type Collection[T any, PT resource.Record[T]] struct {
	mu     sync.RWMutex
	items  []T
	nextID int64
}

func NewCollection[T any, PT resource.Record[T]]() *Collection[T, PT] {
	return &Collection[T, PT]{
		items: make([]T, 0),
	}
}

func (c *Collection[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	PT(&rec).Ref().ID = c.nextID
	c.items = append(c.items, rec)
	return rec, nil
}

func (c *Collection[T, PT]) ListByOwner(ctx context.Context, userID int64) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for i := range c.items {
		if PT(&c.items[i]).Ref().UserID == userID {
			out = append(out, c.items[i])
		}
	}
	return out, nil
}

func (c *Collection[T, PT]) Update(ctx context.Context, id int64, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}

	// fn trabaja sobre una copia: si falla, la colección queda intacta.
	cp := c.items[i]
	if err := fn(&cp); err != nil {
		return zero, err
	}
	c.items[i] = cp
	return cp, nil
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}

	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)
	c.items = next
	return true, nil
}

func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *Collection[T, PT]) Count(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}

// indexOf requiere el lock tomado.
func (c *Collection[T, PT]) indexOf(id int64) int {
	for i := range c.items {
		if PT(&c.items[i]).Ref().ID == id {
			return i
		}
	}
	return -1
}
