// Package sqlstore implements the store repositories on database/sql. The
// sqlite and postgres drivers share it and differ only in dialect and in how
// they recognise constraint violations.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/query"
	"github.com/aussiebroadwan/quill/internal/blog/store"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Config carries what differs between drivers.
type Config struct {
	Dialect query.Dialect

	// IsUniqueViolation recognises the driver's unique constraint error.
	IsUniqueViolation func(error) bool
}

type conn struct {
	db  DBTX
	cfg Config
}

// rebind rewrites ? placeholders into the driver's syntax.
func (c conn) rebind(q string) string {
	if c.cfg.Dialect != query.Postgres {
		return q
	}

	var (
		b        strings.Builder
		n        int
		inQuotes bool
	)
	b.Grow(len(q) + 8)
	for _, r := range q {
		switch {
		case r == '\'':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == '?' && !inQuotes:
			n++
			b.WriteString(c.cfg.Dialect.Placeholder(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c conn) exec(ctx context.Context, q string, args ...any) (sql.Result, error) {
	res, err := c.db.ExecContext(ctx, c.rebind(q), args...)
	return res, c.mapError(err)
}

func (c conn) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return c.db.QueryRowContext(ctx, c.rebind(q), args...)
}

// mustAffect turns an update that touched nothing into ErrNotFound.
func (c conn) mustAffect(ctx context.Context, q string, args ...any) error {
	res, err := c.exec(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c conn) mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case c.cfg.IsUniqueViolation != nil && c.cfg.IsUniqueViolation(err):
		return store.ErrAlreadyExists
	default:
		return err
	}
}

func utc(t time.Time) time.Time { return t.UTC() }

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
