package entity

import "time"

// MotherProfile holds the pregnancy-related fields for a user with role
// mother, stored under mother:{id}. PregnancyStage is intentionally absent:
// it is derived from LMP at read time and never persisted.
type MotherProfile struct {
	UserID        string `json:"userId"`
	LMP           string `json:"lmp,omitempty"`
	DueDate       string `json:"dueDate,omitempty"`
	HasBaby       bool   `json:"hasBaby"`
	BabyBirthDate string `json:"babyBirthDate,omitempty"`
}

// Measurement is a single pregnancy measurement, appended to the
// pregnancy:measurements:{motherId} list. Fields beyond the recording
// metadata are free-form and supplied by the caller.
type Measurement struct {
	ID         string         `json:"id"`
	Data       map[string]any `json:"data,omitempty"`
	RecordedBy string         `json:"recordedBy"`
	RecordedAt time.Time      `json:"recordedAt"`
}
