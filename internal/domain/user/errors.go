package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrRegistrationExists     = errors.New("registration number already registered")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
