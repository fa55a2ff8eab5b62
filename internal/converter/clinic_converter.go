package converter

import (
	"maternacare/internal/delivery/dto"
	"maternacare/internal/domain/entity"
)

// ClinicToResponse builds the public listing entry for an approved clinic.
func ClinicToResponse(user *entity.User) *dto.ClinicResponse {
	if user == nil {
		return nil
	}
	return &dto.ClinicResponse{
		ID:       user.ID,
		Name:     user.Name,
		Location: user.Location,
		Phone:    user.Phone,
		Email:    user.Email,
	}
}
