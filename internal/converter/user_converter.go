package converter

import (
	"time"

	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO without any
// role enrichment.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Phone:     user.Phone,
		Location:  user.Location,
		CreatedAt: user.CreatedAt,
	}
	if !user.UpdatedAt.IsZero() {
		t := user.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

// EnrichMother merges the mother profile into a user response, recomputing
// the pregnancy stage from the stored LMP and the current time.
func EnrichMother(resp *dto.UserResponse, profile *entity.MotherProfile, now time.Time) *dto.UserResponse {
	if resp == nil || profile == nil {
		return resp
	}
	resp.LMP = profile.LMP
	resp.DueDate = profile.DueDate
	resp.PregnancyStage = entity.PregnancyStage(profile.LMP, now)
	hasBaby := profile.HasBaby
	resp.HasBaby = &hasBaby
	resp.BabyBirthDate = profile.BabyBirthDate
	return resp
}

// EnrichClinic merges the clinic approval state into a user response.
func EnrichClinic(resp *dto.UserResponse, profile *entity.ClinicProfile) *dto.UserResponse {
	if resp == nil || profile == nil {
		return resp
	}
	approved := profile.Approved
	resp.Approved = &approved
	resp.ApprovedAt = profile.ApprovedAt
	return resp
}
