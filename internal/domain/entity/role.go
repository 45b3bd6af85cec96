// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a person can have in the platform.
// A user without a role has finished registration but not onboarding.
type Role string

const (
	// RoleTutor indicates a tutor (teacher) role.
	RoleTutor Role = "tutor"
	// RoleParent indicates a parent role.
	RoleParent Role = "parent"
	// RoleStudent indicates a student role.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTutor, RoleParent, RoleStudent:
		return true
	default:
		return false
	}
}

// ParseRole converts a string to a Role, reporting whether it is valid.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
