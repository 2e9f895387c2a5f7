package holiday

import "time"

// Holiday is a calendar date excused from the business-day expectation for
// every user. Unique on date.
type Holiday struct {
	ID          string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
