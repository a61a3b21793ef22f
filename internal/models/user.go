package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	StudentID    string    `json:"student_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // student, admin
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
