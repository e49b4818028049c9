package domain

import "time"

// RoleAdmin is the only role the system knows about. Users without it have
// an empty Role.
const RoleAdmin = "admin"

type User struct {
	ID        string
	Email     string // unique, stored lower-cased
	Name      string
	PhotoURL  string
	Role      string
	CreatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
