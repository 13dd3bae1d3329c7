package session

// Role is the authorization level claimed by the backend token.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the identity derived from the bearer token payload.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user carries the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session pairs a user with the bearer token it was derived from. The two
// are always persisted and cleared together.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
