package domain

import "time"

type Role string

const (
	RoleCreator  Role = "creator"
	RoleMarketer Role = "marketer"
)

func (r Role) Valid() bool {
	return r == RoleCreator || r == RoleMarketer
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Actor is the authenticated principal performing a request
type Actor struct {
	ID   int
	Role Role
}
