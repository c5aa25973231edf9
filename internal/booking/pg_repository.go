package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE raised when the (appointment_date, time_slot)
// unique index rejects a racing insert.
const uniqueViolation = "23505"

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Sex,
		&a.Age,
		&a.Complaint,
		&a.TimeSlot,
		&a.Date,
		&a.CreatedAt,
		&a.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *PgRepository) FindByDateSlot(ctx context.Context, date time.Time, slot TimeSlot) (*Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, sex, age, complaint, time_slot, appointment_date, created_at, status
		FROM appointments
		WHERE appointment_date = $1 AND time_slot = $2
	`, date, slot)
	return scanAppointment(row)
}

func (r *PgRepository) Insert(ctx context.Context, appt *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, name, sex, age, complaint, time_slot, appointment_date, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, appt.ID, appt.Name, appt.Sex, appt.Age, appt.Complaint, appt.TimeSlot, appt.Date, appt.CreatedAt, appt.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return err
	}

	return nil
}

func (r *PgRepository) ListAll(ctx context.Context) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, sex, age, complaint, time_slot, appointment_date, created_at, status
		FROM appointments
		ORDER BY appointment_date ASC, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *PgRepository) ListByDate(ctx context.Context, date time.Time) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, sex, age, complaint, time_slot, appointment_date, created_at, status
		FROM appointments
		WHERE appointment_date = $1
		ORDER BY created_at ASC
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]Appointment, error) {
	var result []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
