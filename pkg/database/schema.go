package database

import (
	"context"
	"fmt"
)

// schemaStatements is the idempotent DDL for the booking backend.
// Nested booking documents (passenger snapshot, bus, journey) live in
// jsonb columns; history lookups go through the snapshot email.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		booking_id TEXT NOT NULL UNIQUE,
		selected_seats JSONB NOT NULL,
		user_details JSONB NOT NULL,
		bus_details JSONB NOT NULL,
		journey_details JSONB NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		booking_time TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_owner_email
		ON bookings ((user_details->>'email'))`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_booking_time
		ON bookings (booking_time DESC)`,
}

// EnsureSchema applies the DDL above. Safe to run on every startup.
func (c *Client) EnsureSchema(ctx context.Context) error {
	return c.WithConn(ctx, func(ctx context.Context, q Querier) error {
		for _, stmt := range schemaStatements {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}
		}
		return nil
	})
}
