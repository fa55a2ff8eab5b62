package entity

// Role identifies what a user account is allowed to do.
type Role string

const (
	RoleMother Role = "mother"
	RoleClinic Role = "clinic"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMother, RoleClinic, RoleAdmin:
		return true
	}
	return false
}
