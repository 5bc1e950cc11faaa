package resource

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Options especializa el servicio genérico para un recurso concreto.
type Options[T any] struct {
	// ReadOnly lista claves que el cliente nunca puede setear ("id" siempre lo es).
	ReadOnly []string

	// Normalize ajusta el input crudo antes de decodificar (p.ej. aliases de campos).
	Normalize func(fields map[string]any)

	// OnCreate completa campos del lado servidor antes de persistir.
	OnCreate func(rec *T, now time.Time)

	// Validate corre sobre el registro final (alta y update) antes de persistir.
	// Su error se devuelve envuelto en ErrInvalidInput.
	Validate func(rec *T) error
}

type Service[T any, PT Record[T]] struct {
	repo Repository[T]
	opts Options[T]
	now  func() time.Time
}

func NewService[T any, PT Record[T]](repo Repository[T], opts Options[T]) *Service[T, PT] {
	return &Service[T, PT]{
		repo: repo,
		opts: opts,
		now:  time.Now,
	}
}

func (s *Service[T, PT]) writable(fields map[string]any) map[string]any {
	if s.opts.Normalize != nil {
		s.opts.Normalize(fields)
	}
	return without(fields, append([]string{"id"}, s.opts.ReadOnly...))
}

func (s *Service[T, PT]) validate(rec *T) error {
	if s.opts.Validate == nil {
		return nil
	}
	if err := s.opts.Validate(rec); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// Add construye un registro con los campos recibidos y lo agrega a la colección.
func (s *Service[T, PT]) Add(ctx context.Context, fields map[string]any) (T, error) {
	var rec T
	if err := Decode(s.writable(fields), &rec); err != nil {
		return rec, err
	}
	PT(&rec).Ref().ID = 0

	if s.opts.OnCreate != nil {
		s.opts.OnCreate(&rec, s.now())
	}
	if err := s.validate(&rec); err != nil {
		return rec, err
	}

	return s.repo.Create(ctx, rec)
}

func (s *Service[T, PT]) List(ctx context.Context, userID int64) ([]T, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Update hace merge superficial de fields sobre el registro id.
// Solo cambian las claves presentes; el id nunca cambia.
func (s *Service[T, PT]) Update(ctx context.Context, id int64, fields map[string]any) (T, error) {
	patch := s.writable(fields)
	return s.repo.Update(ctx, id, func(rec *T) error {
		keep := PT(rec).Ref().ID
		if err := Decode(patch, rec); err != nil {
			return err
		}
		PT(rec).Ref().ID = keep
		return s.validate(rec)
	})
}

// Delete es idempotente: borrar un id inexistente no es error.
func (s *Service[T, PT]) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *Service[T, PT]) All(ctx context.Context) ([]T, error) {
	return s.repo.All(ctx)
}

func (s *Service[T, PT]) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
