package dto

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=mother clinic admin"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LMP      string `json:"lmp" validate:"omitempty,datetime=2006-01-02"`
}

type MakeAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}
