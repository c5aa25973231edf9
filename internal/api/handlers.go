package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/smileworks/dental-clinic-api/internal/booking"
	redisclient "github.com/smileworks/dental-clinic-api/internal/redis"
)

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Dental Clinic Appointment System API"})
}

func createAppointmentHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		sex, err := booking.ParseSex(req.Sex)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "sex: invalid enum value")
			return
		}

		slot, err := booking.ParseTimeSlot(req.TimeSlot)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "time_slot: invalid enum value")
			return
		}

		date, err := time.Parse(booking.DateLayout, req.AppointmentDate)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "appointment_date must be YYYY-MM-DD")
			return
		}

		appt, err := svc.Book(r.Context(), booking.BookingParams{
			Name:      req.Name,
			Sex:       sex,
			Age:       req.Age,
			Complaint: req.Complaint,
			TimeSlot:  slot,
			Date:      date,
		})
		if err != nil {
			handleBookError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(*appt))
	}
}

func listAppointmentsHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appts, err := svc.ListAppointments(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to fetch appointments")
			return
		}

		resp := make([]AppointmentResponse, 0, len(appts))
		for _, a := range appts {
			resp = append(resp, toAppointmentResponse(a))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func availableSlotsHandler(svc *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("appointment_date")
		date, err := time.Parse(booking.DateLayout, raw)
		if err != nil {
			// an unparseable date surfaces as 500, not 4xx; clients of the
			// existing contract depend on it
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to fetch available slots")
			return
		}

		slots, err := svc.AvailableSlots(r.Context(), date)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to fetch available slots")
			return
		}

		resp := AvailableSlotsResponse{AvailableSlots: make([]string, 0, len(slots))}
		for _, s := range slots {
			resp.AvailableSlots = append(resp.AvailableSlots, string(s))
		}
		if date.Weekday() == time.Sunday {
			resp.Message = "No appointments available on Sundays"
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// handleBookError keeps the externally observable split: field-shape failures
// are 422, policy and conflict failures are 400, storage failures are 500.
func handleBookError(w http.ResponseWriter, err error) {
	var fieldErr *booking.FieldValidationError
	switch {
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", fieldErr.Error())
	case errors.Is(err, booking.ErrClinicClosed):
		writeError(w, http.StatusBadRequest, "clinic_closed", err.Error())
	case errors.Is(err, booking.ErrSaturdayAfternoon):
		writeError(w, http.StatusBadRequest, "outside_saturday_hours", err.Error())
	case errors.Is(err, booking.ErrDateInPast):
		writeError(w, http.StatusBadRequest, "date_in_past", err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		writeError(w, http.StatusBadRequest, "slot_already_booked", booking.ErrSlotTaken.Error())
	case errors.Is(err, redisclient.ErrLockNotAcquired):
		writeError(w, http.StatusBadRequest, "slot_being_booked", "slot is currently being booked, please retry shortly")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create appointment")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}
