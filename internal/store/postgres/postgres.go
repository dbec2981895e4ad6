// Package postgres provides a slot medium backed by PostgreSQL, for
// installs that keep the ledger on a shared database instead of the
// local filesystem. Each slot is one row holding the collection
// document as jsonb, matching the local file layout byte for byte.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_slots (
	name       TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type Slots struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Slots, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Slots{pool: pool}, nil
}

func (s *Slots) Close() error {
	s.pool.Close()
	return nil
}

func (s *Slots) Load(ctx context.Context, name string) ([]byte, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM ledger_slots WHERE name = $1`, name,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Slots) Save(ctx context.Context, name string, doc []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO ledger_slots (name, doc, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		name, doc,
	)
	return err
}
