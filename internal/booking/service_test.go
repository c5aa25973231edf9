package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smileworks/dental-clinic-api/internal/booking"
)

type noopLocker struct{}

func (noopLocker) WithSlotLock(ctx context.Context, _, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*booking.Service, *booking.MemoryRepository) {
	repo := booking.NewMemoryRepository()
	return booking.NewService(repo, noopLocker{}, zap.NewNop()), repo
}

// nextWeekday returns the next future occurrence of w, starting tomorrow.
func nextWeekday(w time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != w {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// lastWeekday returns the most recent past occurrence of w, starting yesterday.
func lastWeekday(w time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, -1)
	for d.Weekday() != w {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func TestBook(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p := validParams()
	p.Name = "  John Smith  "
	p.Date = nextWeekday(time.Monday)

	appt, err := svc.Book(ctx, p)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, appt.ID)
	assert.Equal(t, "John Smith", appt.Name, "name should be stored trimmed")
	assert.Equal(t, booking.StatusScheduled, appt.Status)
	assert.False(t, appt.CreatedAt.IsZero())

	stored, err := repo.FindByDateSlot(ctx, p.Date, p.TimeSlot)
	require.NoError(t, err)
	assert.Equal(t, appt.ID, stored.ID)
}

func TestBookSlotConflict(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p := validParams()
	p.Date = nextWeekday(time.Monday)

	_, err := svc.Book(ctx, p)
	require.NoError(t, err)

	p.Name = "Jane Doe"
	_, err = svc.Book(ctx, p)
	assert.ErrorIs(t, err, booking.ErrSlotTaken)

	booked, err := repo.ListByDate(ctx, p.Date)
	require.NoError(t, err)
	require.Len(t, booked, 1, "conflicting booking must not create a second record")
	assert.Equal(t, p.TimeSlot, booked[0].TimeSlot)
}

func TestBookPolicyRejections(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("sunday", func(t *testing.T) {
		for _, slot := range booking.AllSlots {
			p := validParams()
			p.Date = nextWeekday(time.Sunday)
			p.TimeSlot = slot
			_, err := svc.Book(ctx, p)
			assert.ErrorIs(t, err, booking.ErrClinicClosed)
		}
	})

	t.Run("saturday afternoon", func(t *testing.T) {
		for _, slot := range []booking.TimeSlot{booking.Slot1400, booking.Slot1500} {
			p := validParams()
			p.Date = nextWeekday(time.Saturday)
			p.TimeSlot = slot
			_, err := svc.Book(ctx, p)
			assert.ErrorIs(t, err, booking.ErrSaturdayAfternoon)
		}
	})

	t.Run("past weekday", func(t *testing.T) {
		p := validParams()
		p.Date = lastWeekday(time.Monday)
		_, err := svc.Book(ctx, p)
		assert.ErrorIs(t, err, booking.ErrDateInPast)
	})
}

func TestBookFieldValidation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p := validParams()
	p.Date = nextWeekday(time.Monday)
	p.Age = 151

	_, err := svc.Book(ctx, p)

	var fieldErr *booking.FieldValidationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "age", fieldErr.Field)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected candidates must not be persisted")
}

func TestListAppointmentsOrdered(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// booked out of date order on purpose
	days := []time.Time{
		nextWeekday(time.Wednesday),
		nextWeekday(time.Monday),
		nextWeekday(time.Tuesday),
	}
	for _, d := range days {
		p := validParams()
		p.Date = d
		_, err := svc.Book(ctx, p)
		require.NoError(t, err)
	}

	first, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	for i := 1; i < len(first); i++ {
		assert.False(t, first[i].Date.Before(first[i-1].Date), "appointments must be ordered by date ascending")
	}

	second, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "reads must be idempotent")
}
