package record

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE RECORD DTOs
// ========================================

// PunchFields carries the four optional time-of-day punches in "HH:MM" or
// "HH:MM:SS" format.
type PunchFields struct {
	EntryTime    *string `json:"entry_time,omitempty"`
	LunchOutTime *string `json:"lunch_out_time,omitempty"`
	LunchInTime  *string `json:"lunch_in_time,omitempty"`
	ExitTime     *string `json:"exit_time,omitempty"`
}

func validatePunch(errs validator.ValidationErrors, field string, value *string) validator.ValidationErrors {
	if value == nil {
		return errs
	}
	if _, ok := validator.ParseTimeOfDay(*value); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be in HH:MM format",
		})
	}
	return errs
}

// ParsedPunches converts the string punches into time-of-day values. Call
// only after Validate has passed.
func (p *PunchFields) ParsedPunches() (entry, lunchOut, lunchIn, exit *time.Time) {
	parse := func(s *string) *time.Time {
		if s == nil {
			return nil
		}
		t, ok := validator.ParseTimeOfDay(*s)
		if !ok {
			return nil
		}
		return &t
	}
	return parse(p.EntryTime), parse(p.LunchOutTime), parse(p.LunchInTime), parse(p.ExitTime)
}

type CreateRecordRequest struct {
	PunchFields

	// UserID is taken from the token for regular users; admins may create
	// records on behalf of any user.
	UserID          string  `json:"user_id,omitempty"`
	Date            string  `json:"date"`
	IsAbsence       bool    `json:"is_absence"`
	AbsenceCategory *string `json:"absence_category,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Results         *string `json:"results,omitempty"`
	Activities      []string `json:"activities,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = validatePunch(errs, "entry_time", r.EntryTime)
	errs = validatePunch(errs, "lunch_out_time", r.LunchOutTime)
	errs = validatePunch(errs, "lunch_in_time", r.LunchInTime)
	errs = validatePunch(errs, "exit_time", r.ExitTime)

	if r.IsAbsence {
		// An absence excuses the day: no punches may accompany it and a
		// category is mandatory.
		if r.EntryTime != nil || r.LunchOutTime != nil || r.LunchInTime != nil || r.ExitTime != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "is_absence",
				Message: "an absence day cannot carry punches",
			})
		}
		if r.AbsenceCategory == nil || validator.IsEmpty(*r.AbsenceCategory) {
			errs = append(errs, validator.ValidationError{
				Field:   "absence_category",
				Message: "absence_category is required when is_absence is true",
			})
		} else if !validator.IsInSlice(*r.AbsenceCategory, ValidAbsenceCategories) {
			errs = append(errs, validator.ValidationError{
				Field:   "absence_category",
				Message: "absence_category must be one of: vacation, medical_leave, parental_leave, excused, other",
			})
		}
	} else if r.AbsenceCategory != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_category",
			Message: "absence_category is only allowed when is_absence is true",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRecordRequest replaces a record's punches, absence flag, and text
// fields wholesale; omitted punches become null and the cached worked-hours
// value is recomputed from whatever remains.
type UpdateRecordRequest struct {
	PunchFields

	ID              string  `json:"-"`
	IsAbsence       bool    `json:"is_absence"`
	AbsenceCategory *string `json:"absence_category,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Results         *string `json:"results,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	errs = validatePunch(errs, "entry_time", r.EntryTime)
	errs = validatePunch(errs, "lunch_out_time", r.LunchOutTime)
	errs = validatePunch(errs, "lunch_in_time", r.LunchInTime)
	errs = validatePunch(errs, "exit_time", r.ExitTime)

	if r.IsAbsence {
		if r.EntryTime != nil || r.LunchOutTime != nil || r.LunchInTime != nil || r.ExitTime != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "is_absence",
				Message: "an absence day cannot carry punches",
			})
		}
		if r.AbsenceCategory == nil || validator.IsEmpty(*r.AbsenceCategory) {
			errs = append(errs, validator.ValidationError{
				Field:   "absence_category",
				Message: "absence_category is required when is_absence is true",
			})
		} else if !validator.IsInSlice(*r.AbsenceCategory, ValidAbsenceCategories) {
			errs = append(errs, validator.ValidationError{
				Field:   "absence_category",
				Message: "absence_category must be one of: vacation, medical_leave, parental_leave, excused, other",
			})
		}
	} else if r.AbsenceCategory != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_category",
			Message: "absence_category is only allowed when is_absence is true",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddActivityRequest struct {
	RecordID    string `json:"-"`
	Description string `json:"description"`
}

func (r *AddActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateActivityRequest struct {
	ID          string `json:"-"`
	Description string `json:"description"`
}

func (r *UpdateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListMyRecordsFilter narrows the authenticated user's record listing.
type ListMyRecordsFilter struct {
	StartDate *string
	EndDate   *string
}

func (f *ListMyRecordsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ActivityResponse struct {
	ID          string `json:"id"`
	RecordID    string `json:"record_id"`
	Description string `json:"description"`
}

type RecordResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	UserName        *string            `json:"user_name,omitempty"`
	Date            string             `json:"date"`
	EntryTime       *string            `json:"entry_time,omitempty"`
	LunchOutTime    *string            `json:"lunch_out_time,omitempty"`
	LunchInTime     *string            `json:"lunch_in_time,omitempty"`
	ExitTime        *string            `json:"exit_time,omitempty"`
	IsAbsence       bool               `json:"is_absence"`
	AbsenceCategory *string            `json:"absence_category,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	Results         *string            `json:"results,omitempty"`
	WorkedHours     *float64           `json:"worked_hours,omitempty"`
	Activities      []ActivityResponse `json:"activities"`
}

// FormatTimeOfDay renders a punch back into "HH:MM" form.
func FormatTimeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func ToRecordResponse(rec AttendanceRecord) RecordResponse {
	var category *string
	if rec.AbsenceCategory != nil {
		c := string(*rec.AbsenceCategory)
		category = &c
	}

	activities := make([]ActivityResponse, 0, len(rec.Activities))
	for _, act := range rec.Activities {
		activities = append(activities, ActivityResponse{
			ID:          act.ID,
			RecordID:    act.RecordID,
			Description: act.Description,
		})
	}

	return RecordResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		UserName:        rec.UserName,
		Date:            rec.Date.Format("2006-01-02"),
		EntryTime:       FormatTimeOfDay(rec.EntryTime),
		LunchOutTime:    FormatTimeOfDay(rec.LunchOutTime),
		LunchInTime:     FormatTimeOfDay(rec.LunchInTime),
		ExitTime:        FormatTimeOfDay(rec.ExitTime),
		IsAbsence:       rec.IsAbsence,
		AbsenceCategory: category,
		Notes:           rec.Notes,
		Results:         rec.Results,
		WorkedHours:     rec.WorkedHours,
		Activities:      activities,
	}
}
