package booking

import "errors"

// Policy failures: the request is well formed but against clinic rules.
var (
	ErrClinicClosed      = errors.New("appointments are not available on Sundays")
	ErrSaturdayAfternoon = errors.New("on Saturdays, appointments are only available until 1:00 PM")
	ErrDateInPast        = errors.New("cannot book appointments for past dates")
)

// ErrSlotTaken means the date+slot pair already holds an appointment.
var ErrSlotTaken = errors.New("this time slot is already booked for the selected date")

// FieldValidationError marks a malformed candidate (bad name, age, complaint,
// enum value or date shape). The HTTP layer surfaces these as 422, distinct
// from policy and conflict failures.
type FieldValidationError struct {
	Field   string
	Message string
}

func (e *FieldValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func newFieldError(field, message string) error {
	return &FieldValidationError{Field: field, Message: message}
}
