package dto

// ClinicResponse is the public listing entry for an approved clinic.
type ClinicResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email"`
}
