package holiday

import "context"

// HolidayService defines business logic for holiday management (admin surface)
type HolidayService interface {
	// ListByYear retrieves every holiday falling within a calendar year
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)

	// Create registers a new holiday; duplicate dates are rejected
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// Update changes a holiday's date or description
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)

	// Delete removes a holiday
	Delete(ctx context.Context, id string) error
}
