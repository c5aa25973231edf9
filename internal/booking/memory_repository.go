package booking

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is an in-process Repository used in tests. It enforces the
// same date+slot uniqueness the Postgres index does.
type MemoryRepository struct {
	mu    sync.RWMutex
	appts []Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func sameDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}

func (r *MemoryRepository) FindByDateSlot(_ context.Context, date time.Time, slot TimeSlot) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.appts {
		if sameDay(r.appts[i].Date, date) && r.appts[i].TimeSlot == slot {
			a := r.appts[i]
			return &a, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

func (r *MemoryRepository) Insert(_ context.Context, appt *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appts {
		if sameDay(r.appts[i].Date, appt.Date) && r.appts[i].TimeSlot == appt.TimeSlot {
			return ErrSlotTaken
		}
	}

	r.appts = append(r.appts, *appt)
	return nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Appointment, len(r.appts))
	copy(result, r.appts)

	sort.SliceStable(result, func(i, j int) bool {
		if !sameDay(result[i].Date, result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *MemoryRepository) ListByDate(_ context.Context, date time.Time) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Appointment
	for i := range r.appts {
		if sameDay(r.appts[i].Date, date) {
			result = append(result, r.appts[i])
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}
