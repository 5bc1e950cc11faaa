package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"family-care/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DB es un *sql.DB que conoce su dialecto (placeholders y locking).
type DB struct {
	*sql.DB
	dialect Dialect
}

// Open abre Postgres (pgx, database/sql) o SQLite (modernc) y aplica las
// migraciones embebidas del dialecto.
func Open(dialect Dialect, dsn string, log logger.Logger) (*DB, error) {
	if log == nil {
		log = logger.Nop()
	}

	var driver, gooseDialect string
	switch dialect {
	case Postgres:
		driver, gooseDialect = "pgx", "postgres"
	case SQLite:
		driver, gooseDialect = "sqlite", "sqlite3"
	default:
		return nil, fmt.Errorf("sqlstore: unknown dialect %q", dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if dialect == SQLite {
		// Un solo writer: serializa las transacciones y mantiene viva una
		// base ":memory:" (cada conexión nueva sería una base distinta).
		db.SetMaxOpenConns(1)
	} else {
		// defaults razonables para MVP (ajustable luego)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrate(db, gooseDialect, "migrations/"+string(dialect), log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &DB{DB: db, dialect: dialect}, nil
}

func migrate(db *sql.DB, dialect, dir string, log logger.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// rebind pasa los placeholders "?" a "$n" en Postgres. Las queries de este
// paquete no tienen "?" literales.
func (db *DB) rebind(query string) string {
	if db.dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lockClause bloquea la fila leída dentro de una transacción (solo Postgres;
// en SQLite la conexión única ya serializa).
func (db *DB) lockClause() string {
	if db.dialect == Postgres {
		return " FOR UPDATE"
	}
	return ""
}

type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), map[string]any{"component": "migrations"})
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), map[string]any{"component": "migrations"})
}
