package entity

import "time"

// ClinicProfile holds the approval state for a user with role clinic,
// stored under clinic:{id}. A clinic cannot log in until Approved is true.
type ClinicProfile struct {
	UserID     string     `json:"userId"`
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy string     `json:"approvedBy,omitempty"`
}
