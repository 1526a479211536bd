package domain

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session identifies the acting user for operations that authorize.
// It is constructed once by the application shell and passed explicitly;
// nothing in this package reads ambient global state.
type Session struct {
	UserID   string
	Username string
	Role     Role
}

// IsAdmin reports whether the session's actor holds the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
