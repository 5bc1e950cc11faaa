package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"family-care/internal/platform/logger"
	"family-care/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo   Repository
	log    logger.Logger
	admins map[string]struct{}
	cost   int
	now    func() time.Time
}

type Options struct {
	// AdminEmails reciben rol admin al registrarse.
	AdminEmails []string
	Logger      logger.Logger
}

func NewService(repo Repository, opts Options) *Service {
	admins := make(map[string]struct{}, len(opts.AdminEmails))
	for _, e := range opts.AdminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = struct{}{}
		}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Service{
		repo:   repo,
		log:    log,
		admins: admins,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register siempre da de alta un usuario nuevo: el email no es único.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		// p.ej. bcrypt.ErrPasswordTooLong
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	role := auth.RoleUser
	if _, ok := s.admins[normalizeEmail(in.Email)]; ok {
		role = auth.RoleAdmin
	}

	u, err := s.repo.Create(ctx, User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("auth_event", map[string]any{"event": "registered", "user_id": u.ID, "role": u.Role})
	return u, nil
}

// Login devuelve el primer usuario (en orden de alta) cuyo email coincide
// exactamente y cuyo hash valida la contraseña.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	candidates, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("list users by email: %w", err)
	}

	for _, u := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			s.log.Info("auth_event", map[string]any{"event": "login", "user_id": u.ID})
			return u, nil
		}
	}

	reason := "wrong_password"
	if len(candidates) == 0 {
		reason = "not_found"
	}
	s.log.Info("auth_event", map[string]any{"event": "login_failed", "email": email, "reason": reason})
	return User{}, ErrInvalidCredentials
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Delete es idempotente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if removed {
		s.log.Info("auth_event", map[string]any{"event": "user_deleted", "user_id": id})
	}
	return nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
