package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/smileworks/dental-clinic-api/internal/booking"
)

type CreateAppointmentRequest struct {
	Name            string `json:"name"`
	Sex             string `json:"sex"`
	Age             int    `json:"age"`
	Complaint       string `json:"complaint"`
	TimeSlot        string `json:"time_slot"`
	AppointmentDate string `json:"appointment_date"`
}

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Sex             string    `json:"sex"`
	Age             int       `json:"age"`
	Complaint       string    `json:"complaint"`
	TimeSlot        string    `json:"time_slot"`
	AppointmentDate string    `json:"appointment_date"`
	CreatedAt       time.Time `json:"created_at"`
	Status          string    `json:"status"`
}

func toAppointmentResponse(a booking.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Sex:             string(a.Sex),
		Age:             a.Age,
		Complaint:       a.Complaint,
		TimeSlot:        string(a.TimeSlot),
		AppointmentDate: a.Date.Format(booking.DateLayout),
		CreatedAt:       a.CreatedAt,
		Status:          string(a.Status),
	}
}

type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"available_slots"`
	Message        string   `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
