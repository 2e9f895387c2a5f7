package balance

import "context"

// BalanceService computes the monthly bank-of-hours statistics. Read-only and
// safe to call concurrently; a repeated call after a completed record edit is
// idempotent and reflects it.
type BalanceService interface {
	// ComputeMonthlyStatistics classifies every day of (month, year) for a
	// user and returns the statistics bundle
	ComputeMonthlyStatistics(ctx context.Context, userID string, month, year int) (MonthlyStats, error)
}
