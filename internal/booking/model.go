package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for appointment dates. Dates are
// kept as plain calendar days so query strings compare exactly against stored
// values.
const DateLayout = "2006-01-02"

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
	SexOther  Sex = "Other"
)

func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale, SexOther:
		return Sex(s), nil
	}
	return "", fmt.Errorf("unknown sex %q", s)
}

type TimeSlot string

const (
	Slot0900 TimeSlot = "9:00–10:00 AM"
	Slot1000 TimeSlot = "10:00–11:00 AM"
	Slot1100 TimeSlot = "11:00–12:00 PM"
	Slot1200 TimeSlot = "12:00–1:00 PM"
	Slot1400 TimeSlot = "2:00–3:00 PM"
	Slot1500 TimeSlot = "3:00–4:00 PM"
)

// AllSlots is the canonical chronological slot order. Availability results
// always follow this order.
var AllSlots = []TimeSlot{Slot0900, Slot1000, Slot1100, Slot1200, Slot1400, Slot1500}

// MorningSlots are the slots bookable on Saturdays (clinic closes at 1:00 PM).
var MorningSlots = []TimeSlot{Slot0900, Slot1000, Slot1100, Slot1200}

func ParseTimeSlot(s string) (TimeSlot, error) {
	for _, slot := range AllSlots {
		if TimeSlot(s) == slot {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown time slot %q", s)
}

type Status string

const (
	StatusScheduled Status = "scheduled"
)

type Appointment struct {
	ID        uuid.UUID
	Name      string
	Sex       Sex
	Age       int
	Complaint string
	TimeSlot  TimeSlot
	Date      time.Time // calendar date, midnight UTC
	CreatedAt time.Time
	Status    Status
}
