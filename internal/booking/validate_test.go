package booking_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smileworks/dental-clinic-api/internal/booking"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validParams() booking.BookingParams {
	return booking.BookingParams{
		Name:      "John Smith",
		Sex:       booking.SexMale,
		Age:       30,
		Complaint: "Regular dental checkup",
		TimeSlot:  booking.Slot0900,
		Date:      date(2030, time.March, 4),
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*booking.BookingParams)
		wantField string
	}{
		{"valid", func(p *booking.BookingParams) {}, ""},
		{"name one char", func(p *booking.BookingParams) { p.Name = "J" }, "name"},
		{"name whitespace padded", func(p *booking.BookingParams) { p.Name = " J " }, "name"},
		{"name exactly two chars", func(p *booking.BookingParams) { p.Name = "Jo" }, ""},
		{"complaint four chars", func(p *booking.BookingParams) { p.Complaint = "achy" }, "complaint"},
		{"complaint exactly five chars", func(p *booking.BookingParams) { p.Complaint = "aches" }, ""},
		{"complaint padded", func(p *booking.BookingParams) { p.Complaint = "  ow  " }, "complaint"},
		{"age negative", func(p *booking.BookingParams) { p.Age = -1 }, "age"},
		{"age zero", func(p *booking.BookingParams) { p.Age = 0 }, ""},
		{"age 150", func(p *booking.BookingParams) { p.Age = 150 }, ""},
		{"age 151", func(p *booking.BookingParams) { p.Age = 151 }, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			err := booking.ValidateFields(p)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErr *booking.FieldValidationError
			require.True(t, errors.As(err, &fieldErr), "expected FieldValidationError, got %v", err)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestCheckSlotLegality(t *testing.T) {
	// 2026-03-04 is a Wednesday; 2026-03-07 a Saturday; 2026-03-08 a Sunday.
	today := date(2026, time.March, 4)

	tests := []struct {
		name string
		day  time.Time
		slot booking.TimeSlot
		want error
	}{
		{"sunday morning", date(2026, time.March, 8), booking.Slot0900, booking.ErrClinicClosed},
		{"sunday afternoon", date(2026, time.March, 8), booking.Slot1500, booking.ErrClinicClosed},
		{"saturday morning", date(2026, time.March, 7), booking.Slot0900, nil},
		{"saturday noon", date(2026, time.March, 7), booking.Slot1200, nil},
		{"saturday two pm", date(2026, time.March, 7), booking.Slot1400, booking.ErrSaturdayAfternoon},
		{"saturday three pm", date(2026, time.March, 7), booking.Slot1500, booking.ErrSaturdayAfternoon},
		{"weekday afternoon", date(2026, time.March, 5), booking.Slot1400, nil},
		{"yesterday", date(2026, time.March, 3), booking.Slot0900, booking.ErrDateInPast},
		{"same day", date(2026, time.March, 4), booking.Slot0900, nil},
		{"past saturday afternoon reported as hours", date(2026, time.February, 28), booking.Slot1400, booking.ErrSaturdayAfternoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := booking.CheckSlotLegality(tt.day, tt.slot, today)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	for _, s := range []string{"Male", "Female", "Other"} {
		_, err := booking.ParseSex(s)
		assert.NoError(t, err, s)
	}
	_, err := booking.ParseSex("male")
	assert.Error(t, err)

	for _, slot := range booking.AllSlots {
		parsed, err := booking.ParseTimeSlot(string(slot))
		require.NoError(t, err)
		assert.Equal(t, slot, parsed)
	}
	_, err = booking.ParseTimeSlot("9:00-10:00 AM") // hyphen, not the canonical dash
	assert.Error(t, err)

	assert.Len(t, booking.AllSlots, 6)
	assert.Equal(t, booking.AllSlots[:4], booking.MorningSlots)
}
