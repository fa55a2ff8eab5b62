package dto

type CreateAppointmentRequest struct {
	ClinicID string `json:"clinicId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time   *string `json:"time"`
	Type   *string `json:"type"`
	Reason *string `json:"reason"`
	Notes  *string `json:"notes"`
	Status *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}
