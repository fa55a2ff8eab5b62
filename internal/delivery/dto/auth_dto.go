package dto

import (
	"time"

	"maternacare/internal/domain/entity"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=mother clinic admin"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LMP      string `json:"lmp" validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the allow-list of mutable profile fields. ID,
// email and role are deliberately absent so no patch can touch them.
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Location      *string `json:"location"`
	LMP           *string `json:"lmp" validate:"omitempty,datetime=2006-01-02"`
	HasBaby       *bool   `json:"hasBaby"`
	BabyBirthDate *string `json:"babyBirthDate" validate:"omitempty,datetime=2006-01-02"`
}

// UserResponse is the enriched profile returned by auth and admin
// endpoints. Mother and clinic fields are populated only for those roles.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	Phone     string      `json:"phone,omitempty"`
	Location  string      `json:"location,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`

	// Mother enrichment, always derived at read time.
	LMP            string `json:"lmp,omitempty"`
	DueDate        string `json:"dueDate,omitempty"`
	PregnancyStage string `json:"pregnancyStage,omitempty"`
	HasBaby        *bool  `json:"hasBaby,omitempty"`
	BabyBirthDate  string `json:"babyBirthDate,omitempty"`

	// Clinic enrichment, present on admin listings.
	Approved   *bool      `json:"approved,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
}

type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"access_token"`
	Message     string        `json:"message"`
}
