package domain

import "strings"

// Role identifies what a signed-in user may see. The zero value is a guest.
type Role string

const (
	RoleGuest      Role = ""
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ParseRole normalises the role claim sent by the backend, which may arrive as
// "ROLE_ADMIN", "Admin" or "admin".
func ParseRole(raw string) Role {
	r := strings.ToLower(strings.TrimSpace(raw))
	r = strings.TrimPrefix(r, "role_")
	return Role(r)
}

// Known reports whether r is one of the roles the UI has a view for.
func (r Role) Known() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User mirrors an entry of the backend's user listing.
type User struct {
	ID        int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"createdAt"`
}

// Viewer is the identity of whoever is looking at a page, derived from the
// session token.
type Viewer struct {
	UserID    int64
	Username  string
	Role      Role
	AvatarURL string
}

// LoggedIn is true only when both a role and a user id are present.
func (v Viewer) LoggedIn() bool {
	return v.Role != RoleGuest && v.UserID > 0
}

func (v Viewer) IsStudent() bool    { return v.Role == RoleStudent }
func (v Viewer) IsInstructor() bool { return v.Role == RoleInstructor }
func (v Viewer) IsAdmin() bool      { return v.Role == RoleAdmin }
