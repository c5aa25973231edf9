package booking

import (
	"context"
	"fmt"
	"time"
)

// AvailableSlots computes the slots still bookable on the given date: the
// weekly policy (closed Sundays, Saturday mornings only) minus slots already
// taken, in canonical order. It deliberately skips the past-date check; that
// belongs to booking, not to answering what fits the schedule.
func (s *Service) AvailableSlots(ctx context.Context, date time.Time) ([]TimeSlot, error) {
	if date.Weekday() == time.Sunday {
		return []TimeSlot{}, nil
	}

	base := AllSlots
	if date.Weekday() == time.Saturday {
		base = MorningSlots
	}

	booked, err := s.repo.ListByDate(ctx, truncateToDay(date))
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}

	taken := make(map[TimeSlot]bool, len(booked))
	for _, appt := range booked {
		taken[appt.TimeSlot] = true
	}

	available := make([]TimeSlot, 0, len(base))
	for _, slot := range base {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return available, nil
}
