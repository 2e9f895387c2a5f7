package user

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type CreateUserRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Registration    string  `json:"registration"`
	Position        *string `json:"position,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	IsAdmin         bool    `json:"is_admin"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Registration) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration",
			Message: "registration is required",
		})
	} else if !validator.IsValidRegistration(r.Registration) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration",
			Message: "registration must be 4-20 alphanumeric characters",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "passwords do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Registration *string `json:"registration,omitempty"`
	Position     *string `json:"position,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsAdmin      *bool   `json:"is_admin,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}
	if r.Registration != nil && !validator.IsValidRegistration(*r.Registration) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration",
			Message: "registration must be 4-20 alphanumeric characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Registration string  `json:"registration"`
	Position     *string `json:"position,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsAdmin      bool    `json:"is_admin"`
	CreatedAt    string  `json:"created_at"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Registration: u.Registration,
		Position:     u.Position,
		Phone:        u.Phone,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
