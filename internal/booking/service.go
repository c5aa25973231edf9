package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	redisclient "github.com/smileworks/dental-clinic-api/internal/redis"
)

// BookingParams is a candidate appointment as decoded at the transport layer,
// with enums already parsed into their closed types.
type BookingParams struct {
	Name      string
	Sex       Sex
	Age       int
	Complaint string
	TimeSlot  TimeSlot
	Date      time.Time
}

type Service struct {
	repo   Repository
	locker redisclient.Locker
	logger *zap.Logger
}

func NewService(repo Repository, locker redisclient.Locker, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		locker: locker,
		logger: logger,
	}
}

// Book validates a candidate and persists it. A distributed lock serializes
// concurrent bookings of the same date+slot pair; the unique index on the
// appointments table backstops the lock, so a racing insert surfaces as
// ErrSlotTaken either way.
func (s *Service) Book(ctx context.Context, p BookingParams) (*Appointment, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Complaint = strings.TrimSpace(p.Complaint)

	if err := ValidateFields(p); err != nil {
		return nil, err
	}
	if err := CheckSlotLegality(p.Date, p.TimeSlot, time.Now()); err != nil {
		return nil, err
	}

	var created *Appointment
	date := truncateToDay(p.Date)

	err := s.locker.WithSlotLock(ctx, date.Format(DateLayout), string(p.TimeSlot), func(lockCtx context.Context) error {
		existing, err := s.repo.FindByDateSlot(lockCtx, date, p.TimeSlot)
		if err != nil && !errors.Is(err, ErrAppointmentNotFound) {
			return fmt.Errorf("check booked slot: %w", err)
		}
		if existing != nil {
			return ErrSlotTaken
		}

		appt := &Appointment{
			ID:        uuid.New(),
			Name:      p.Name,
			Sex:       p.Sex,
			Age:       p.Age,
			Complaint: p.Complaint,
			TimeSlot:  p.TimeSlot,
			Date:      date,
			CreatedAt: time.Now().UTC(),
			Status:    StatusScheduled,
		}

		if err := s.repo.Insert(lockCtx, appt); err != nil {
			return fmt.Errorf("insert appointment: %w", err)
		}

		created = appt

		s.logger.Info("appointment booked",
			zap.String("id", appt.ID.String()),
			zap.String("date", date.Format(DateLayout)),
			zap.String("slot", string(appt.TimeSlot)),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListAppointments returns every appointment, soonest date first.
func (s *Service) ListAppointments(ctx context.Context) ([]Appointment, error) {
	appts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}
