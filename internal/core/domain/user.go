package domain

// Role is the closed set of access levels an account can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps a wire value to a Role. Anything outside the two known
// variants is rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}

// Satisfies reports whether a holder of r meets the given minimum
// requirement: admin satisfies everything, user satisfies only user.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == RoleUser && required == RoleUser
}

// User models an authenticated actor. Identity is the (username, role)
// pair, not the username alone: the same username may hold separate admin
// and user accounts with independent passwords.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
