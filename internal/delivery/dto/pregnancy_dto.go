package dto

import "maternacare/internal/domain/entity"

// PregnancyResponse bundles the mother profile with her measurements and
// appointments. PregnancyStage is recomputed for every response.
type PregnancyResponse struct {
	UserID         string                `json:"userId"`
	LMP            string                `json:"lmp,omitempty"`
	DueDate        string                `json:"dueDate,omitempty"`
	PregnancyStage string                `json:"pregnancyStage"`
	HasBaby        bool                  `json:"hasBaby"`
	BabyBirthDate  string                `json:"babyBirthDate,omitempty"`
	Measurements   []entity.Measurement  `json:"measurements"`
	Appointments   []*entity.Appointment `json:"appointments"`
}
