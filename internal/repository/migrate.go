package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id         BIGSERIAL PRIMARY KEY,
		order_id   TEXT NOT NULL UNIQUE,
		address    TEXT NOT NULL DEFAULT '',
		items      JSONB NOT NULL DEFAULT '[]',
		amount     BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		geo_lat    DOUBLE PRECISION,
		geo_lon    DOUBLE PRECISION,
		username   TEXT,
		status     TEXT NOT NULL DEFAULT 'new',
		eta_days   INTEGER,
		eta_date   TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_username_idx ON orders (username, id DESC)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id             BIGSERIAL PRIMARY KEY,
		order_id       TEXT NOT NULL,
		status         TEXT NOT NULL,
		amount         BIGINT NOT NULL DEFAULT 0,
		card_last4     TEXT NOT NULL DEFAULT '',
		card_brand     TEXT NOT NULL DEFAULT '',
		transaction_id TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS payments_order_idx ON payments (order_id, id DESC)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id         BIGSERIAL PRIMARY KEY,
		product_id TEXT NOT NULL,
		rating     INTEGER NOT NULL,
		text       TEXT NOT NULL DEFAULT '',
		author     TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_product_idx ON reviews (product_id, id DESC)`,
}

// Migrate creates the tables used by the shop. It is idempotent.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	return withTx(ctx, db, func(tx pgx.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate step %d: %w", i, err)
			}
		}
		return nil
	})
}
