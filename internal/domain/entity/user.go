package entity

import "time"

// User is the account record shared by all three roles. It is stored as a
// whole JSON value under user:{id}, with a reverse index user:email:{email}
// holding the id for login and uniqueness checks.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (u *User) IsMother() bool { return u.Role == RoleMother }
func (u *User) IsClinic() bool { return u.Role == RoleClinic }
func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
