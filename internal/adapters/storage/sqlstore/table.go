package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"family-care/internal/domain/resource"
)

var (
	ErrNotFound = resource.ErrNotFound
)

type scanner interface {
	Scan(dest ...any) error
}

// table implementa resource.Repository[T] sobre una tabla con columnas
// id + cols; cols tiene que incluir user_id.
type table[T any, PT resource.Record[T]] struct {
	db   *DB
	name string
	cols []string

	// values devuelve los valores en el orden de cols.
	values func(rec *T) []any
	// dest devuelve los destinos de Scan en el orden de cols (sin id).
	dest func(rec *T) []any
}

func (t *table[T, PT]) selectCols() string {
	return "id, " + strings.Join(t.cols, ", ")
}

func (t *table[T, PT]) scanOne(s scanner) (T, error) {
	var rec T
	dst := append([]any{&PT(&rec).Ref().ID}, t.dest(&rec)...)
	if err := s.Scan(dst...); err != nil {
		return rec, err
	}
	return rec, nil
}

func (t *table[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.cols)), ", ")
	q := t.db.rebind(fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		t.name, strings.Join(t.cols, ", "), placeholders,
	))

	var id int64
	if err := t.db.QueryRowContext(ctx, q, t.values(&rec)...).Scan(&id); err != nil {
		return rec, fmt.Errorf("insert %s: %w", t.name, err)
	}
	PT(&rec).Ref().ID = id
	return rec, nil
}

func (t *table[T, PT]) ListByOwner(ctx context.Context, userID int64) ([]T, error) {
	q := t.db.rebind(fmt.Sprintf(
		`SELECT %s FROM %s WHERE user_id = ? ORDER BY id ASC`,
		t.selectCols(), t.name,
	))
	return t.query(ctx, q, userID)
}

func (t *table[T, PT]) All(ctx context.Context) ([]T, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC`, t.selectCols(), t.name)
	return t.query(ctx, q)
}

func (t *table[T, PT]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		rec, err := t.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update lee la fila con lock, aplica fn y escribe todas las columnas, todo en
// una transacción.
func (t *table[T, PT]) Update(ctx context.Context, id int64, fn func(*T) error) (T, error) {
	var zero T

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sel := t.db.rebind(fmt.Sprintf(
		`SELECT %s FROM %s WHERE id = ?%s`,
		t.selectCols(), t.name, t.db.lockClause(),
	))
	rec, err := t.scanOne(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("select %s: %w", t.name, err)
	}

	if err := fn(&rec); err != nil {
		return zero, err
	}

	sets := make([]string, 0, len(t.cols))
	for _, c := range t.cols {
		sets = append(sets, c+" = ?")
	}
	upd := t.db.rebind(fmt.Sprintf(
		`UPDATE %s SET %s WHERE id = ?`,
		t.name, strings.Join(sets, ", "),
	))
	args := append(t.values(&rec), id)
	if _, err := tx.ExecContext(ctx, upd, args...); err != nil {
		return zero, fmt.Errorf("update %s: %w", t.name, err)
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

func (t *table[T, PT]) Delete(ctx context.Context, id int64) (bool, error) {
	q := t.db.rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.name))
	res, err := t.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.name, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (t *table[T, PT]) Count(ctx context.Context) (int, error) {
	var n int
	if err := t.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.name)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}
