package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment links a mother and a clinic. The id is referenced from two
// owner lists, appointments:mother:{motherId} and
// appointments:clinic:{clinicId}, which must stay in sync with the record.
type Appointment struct {
	ID        string            `json:"id"`
	MotherID  string            `json:"motherId"`
	ClinicID  string            `json:"clinicId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Type      string            `json:"type,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt,omitempty"`
}

// IsPending checks if the appointment has not been acted on yet.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// Confirm moves the appointment to confirmed.
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel moves the appointment to cancelled.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
