package user

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Registration string
	Position     *string
	Phone        *string
	IsAdmin      bool
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
