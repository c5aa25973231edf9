package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The unique index on (appointment_date, time_slot) is what makes booking
// writes conditional: a second insert for an occupied pair fails instead of
// silently double-booking the slot.
const schema = `
CREATE TABLE IF NOT EXISTS appointments (
	id               uuid PRIMARY KEY,
	name             text NOT NULL,
	sex              text NOT NULL,
	age              integer NOT NULL,
	complaint        text NOT NULL,
	time_slot        text NOT NULL,
	appointment_date date NOT NULL,
	created_at       timestamptz NOT NULL DEFAULT now(),
	status           text NOT NULL DEFAULT 'scheduled'
);

CREATE UNIQUE INDEX IF NOT EXISTS appointments_date_slot_key
	ON appointments (appointment_date, time_slot);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
