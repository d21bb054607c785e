package domain

// RoleAdmin is the role allowed to manage services.
const RoleAdmin = "Admin"

// User is the caller identity provided by the external auth collaborator.
// The client treats it as an opaque capability token.
type User struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

// CanManageServices reports whether the user may create, edit or delete services.
// A nil user has no capabilities.
func (u *User) CanManageServices() bool {
	return u != nil && u.Role == RoleAdmin
}
