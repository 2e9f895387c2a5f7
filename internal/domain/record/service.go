package record

import "context"

// RecordService defines business logic for attendance record operations.
// Create and Update recompute the cached worked-hours value from the punches
// inside a single transaction, so the stored hours are never observed out of
// sync with the punches that produced them.
type RecordService interface {
	// Create registers a day's punches or an excused absence
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// Get retrieves a single record; owners and admins only
	Get(ctx context.Context, id string) (RecordResponse, error)

	// ListMine retrieves the authenticated user's records in a date range
	ListMine(ctx context.Context, filter ListMyRecordsFilter) ([]RecordResponse, error)

	// Update replaces a record's punches and text fields; owners and admins only
	Update(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// Delete removes a record and its activities; owners and admins only
	Delete(ctx context.Context, id string) error

	// AddActivity attaches a work-performed note to a record
	AddActivity(ctx context.Context, req AddActivityRequest) (ActivityResponse, error)

	// UpdateActivity rewrites an activity's description
	UpdateActivity(ctx context.Context, req UpdateActivityRequest) (ActivityResponse, error)

	// DeleteActivity removes a single activity
	DeleteActivity(ctx context.Context, id string) error
}
