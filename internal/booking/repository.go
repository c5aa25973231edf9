package booking

import (
	"context"
	"errors"
	"time"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Repository contains all DB interactions needed by the service.
type Repository interface {
	// FindByDateSlot returns the appointment occupying the exact date+slot
	// pair, or ErrAppointmentNotFound when the slot is free.
	FindByDateSlot(ctx context.Context, date time.Time, slot TimeSlot) (*Appointment, error)

	// Insert persists a new appointment. It returns ErrSlotTaken when a
	// conflicting insert already holds the date+slot pair.
	Insert(ctx context.Context, appt *Appointment) error

	// ListAll returns every appointment ordered by appointment date
	// ascending, ties broken by creation time.
	ListAll(ctx context.Context) ([]Appointment, error)

	ListByDate(ctx context.Context, date time.Time) ([]Appointment, error)
}
