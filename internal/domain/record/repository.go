package record

import (
	"context"
	"time"
)

// RecordRepository defines data access methods for attendance records.
type RecordRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves a record by ID, with its activities
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByUserAndDate retrieves the record for a specific user on a specific
	// date. Returns (nil, nil) when no record exists; used to prevent
	// duplicate user+date rows before hitting the unique constraint.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*AttendanceRecord, error)

	// FindByUserAndDateRange retrieves all records for a user with date in
	// [start, end] inclusive, ordered by date, with activities attached
	FindByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]AttendanceRecord, error)

	// Update rewrites the mutable fields of an existing record
	Update(ctx context.Context, rec AttendanceRecord) error

	// Delete removes a record; its activities cascade
	Delete(ctx context.Context, id string) error
}

// ActivityRepository defines data access methods for activity notes.
type ActivityRepository interface {
	// Create attaches a new activity to a record
	Create(ctx context.Context, act Activity) (Activity, error)

	// GetByID retrieves an activity by ID
	GetByID(ctx context.Context, id string) (Activity, error)

	// ListByRecord retrieves all activities of one record, oldest first
	ListByRecord(ctx context.Context, recordID string) ([]Activity, error)

	// Update rewrites an activity's description
	Update(ctx context.Context, act Activity) error

	// Delete removes a single activity
	Delete(ctx context.Context, id string) error
}
