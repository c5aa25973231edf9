package booking_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smileworks/dental-clinic-api/internal/booking"
	"github.com/smileworks/dental-clinic-api/internal/db"
)

func setupPgRepo(t *testing.T) *booking.PgRepository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(context.Background(), pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return booking.NewPgRepository(pool)
}

// uniqueDate hands out a fresh far-future date per call so repeated test runs
// never collide on the unique index.
func uniqueDate(t *testing.T) time.Time {
	t.Helper()
	offset := time.Now().UnixNano() % 300000
	return time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(offset))
}

func testAppointment(date time.Time, slot booking.TimeSlot) *booking.Appointment {
	return &booking.Appointment{
		ID:        uuid.New(),
		Name:      "Pg Test Patient",
		Sex:       booking.SexFemale,
		Age:       42,
		Complaint: "Integration test complaint",
		TimeSlot:  slot,
		Date:      date,
		CreatedAt: time.Now().UTC(),
		Status:    booking.StatusScheduled,
	}
}

func TestPgInsertAndFind(t *testing.T) {
	repo := setupPgRepo(t)
	ctx := context.Background()

	date := uniqueDate(t)
	appt := testAppointment(date, booking.Slot0900)

	require.NoError(t, repo.Insert(ctx, appt))

	found, err := repo.FindByDateSlot(ctx, date, booking.Slot0900)
	require.NoError(t, err)
	assert.Equal(t, appt.ID, found.ID)
	assert.Equal(t, appt.Name, found.Name)
	assert.Equal(t, booking.Slot0900, found.TimeSlot)
	assert.Equal(t, date.Format(booking.DateLayout), found.Date.Format(booking.DateLayout))

	_, err = repo.FindByDateSlot(ctx, date, booking.Slot1500)
	assert.ErrorIs(t, err, booking.ErrAppointmentNotFound)
}

func TestPgUniqueIndexRejectsDoubleBooking(t *testing.T) {
	repo := setupPgRepo(t)
	ctx := context.Background()

	date := uniqueDate(t)

	require.NoError(t, repo.Insert(ctx, testAppointment(date, booking.Slot1000)))

	err := repo.Insert(ctx, testAppointment(date, booking.Slot1000))
	assert.ErrorIs(t, err, booking.ErrSlotTaken)

	booked, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, booked, 1)
}

func TestPgListByDate(t *testing.T) {
	repo := setupPgRepo(t)
	ctx := context.Background()

	date := uniqueDate(t)

	require.NoError(t, repo.Insert(ctx, testAppointment(date, booking.Slot0900)))
	require.NoError(t, repo.Insert(ctx, testAppointment(date, booking.Slot1400)))

	booked, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	assert.Len(t, booked, 2)

	other, err := repo.ListByDate(ctx, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, other)
}
