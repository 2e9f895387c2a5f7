package record

import "errors"

// Attendance record domain errors
var (
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrRecordAlreadyExists = errors.New("a record already exists for this user and date")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrUnauthorized        = errors.New("unauthorized to access this attendance record")
)
