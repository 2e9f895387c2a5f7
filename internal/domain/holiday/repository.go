package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for holidays.
type HolidayRepository interface {
	// FindByDateRange retrieves all holidays with date in [start, end]
	// inclusive, ordered by date
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// GetByID retrieves a holiday by ID
	GetByID(ctx context.Context, id string) (Holiday, error)

	// Create registers a new holiday
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// Update rewrites a holiday's date and description
	Update(ctx context.Context, h Holiday) error

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error
}
