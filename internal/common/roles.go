// File: internal/common/roles.go
package common

// Role is the closed set of principal roles. Authorization checks compare
// against these constants, never against ad hoc strings.
type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}
