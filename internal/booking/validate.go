package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("trimmed_min", validateTrimmedMin)
}

// validateTrimmedMin checks the minimum length of a string after trimming
// surrounding whitespace.
func validateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(fl.Field().String())) >= min
}

type fieldRules struct {
	Name      string `validate:"trimmed_min=2"`
	Complaint string `validate:"trimmed_min=5"`
	Age       int    `validate:"gte=0,lte=150"`
}

// ValidateFields rejects structurally invalid candidates before any storage
// access. The first failing rule wins.
func ValidateFields(p BookingParams) error {
	err := validate.Struct(fieldRules{
		Name:      p.Name,
		Complaint: p.Complaint,
		Age:       p.Age,
	})
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return newFieldError("candidate", err.Error())
	}

	switch verrs[0].StructField() {
	case "Name":
		return newFieldError("name", "name must be at least 2 characters long")
	case "Complaint":
		return newFieldError("complaint", "complaint must be at least 5 characters long")
	case "Age":
		return newFieldError("age", "age must be between 0 and 150")
	}
	return newFieldError("candidate", verrs[0].Error())
}

// CheckSlotLegality applies the day-of-week policy. It is pure given
// (date, slot, today): Sundays are closed, Saturday afternoons are closed,
// and dates strictly before today cannot be booked.
func CheckSlotLegality(date time.Time, slot TimeSlot, today time.Time) error {
	switch date.Weekday() {
	case time.Sunday:
		return ErrClinicClosed
	case time.Saturday:
		if slot == Slot1400 || slot == Slot1500 {
			return ErrSaturdayAfternoon
		}
	}

	// compare calendar days, not instants: the candidate date is a plain
	// calendar day while today carries the server zone
	if date.Format(DateLayout) < today.Format(DateLayout) {
		return ErrDateInPast
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
