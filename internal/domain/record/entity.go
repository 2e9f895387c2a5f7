package record

import (
	"time"
)

// AbsenceCategory is the closed set of excused-day classifications.
type AbsenceCategory string

const (
	AbsenceVacation     AbsenceCategory = "vacation"
	AbsenceMedicalLeave AbsenceCategory = "medical_leave"
	AbsenceParental     AbsenceCategory = "parental_leave"
	AbsenceExcused      AbsenceCategory = "excused"
	AbsenceOther        AbsenceCategory = "other"
)

// ValidAbsenceCategories lists the accepted values for request validation.
var ValidAbsenceCategories = []string{
	string(AbsenceVacation),
	string(AbsenceMedicalLeave),
	string(AbsenceParental),
	string(AbsenceExcused),
	string(AbsenceOther),
}

// AttendanceRecord is one user's punches (or excused absence) for one
// calendar date. Unique on (user, date).
type AttendanceRecord struct {
	ID              string
	UserID          string
	Date            time.Time
	EntryTime       *time.Time
	LunchOutTime    *time.Time
	LunchInTime     *time.Time
	ExitTime        *time.Time
	IsAbsence       bool
	AbsenceCategory *AbsenceCategory
	Notes           *string
	Results         *string
	WorkedHours     *float64
	Activities      []Activity
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	UserName *string
}

// Activity is a free-text description of work performed, owned by exactly
// one attendance record.
type Activity struct {
	ID          string
	RecordID    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
