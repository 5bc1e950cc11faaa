package sqlstore

import (
	"context"
	"fmt"

	"family-care/internal/domain/users"
)

type UsersRepo struct {
	db *DB
}

func NewUsersRepo(db *DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userCols = `id, name, email, password_hash, role, created_at`

func scanUser(s scanner) (users.User, error) {
	var u users.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	q := r.db.rebind(`
		INSERT INTO users (name, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	if err := r.db.QueryRowContext(ctx, q, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt).Scan(&u.ID); err != nil {
		return users.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UsersRepo) ListByEmail(ctx context.Context, email string) ([]users.User, error) {
	return r.list(ctx, r.db.rebind(`SELECT `+userCols+` FROM users WHERE email = ? ORDER BY id ASC`), email)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	return r.list(ctx, `SELECT `+userCols+` FROM users ORDER BY id ASC`)
}

func (r *UsersRepo) list(ctx context.Context, q string, args ...any) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *UsersRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
