package balance

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
)

// StandardWorkdayHours is the fixed expectation for one business day.
const StandardWorkdayHours = 8.0

// DateKey renders a date in the form used to key the per-day lookup maps.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthlyStats is the statistics bundle for one user and one month. It is a
// pure function of stored state: calling the aggregator twice with no
// intervening writes yields identical bundles.
type MonthlyStats struct {
	UserID string
	Month  int
	Year   int

	// Day classification
	PotentialBusinessDays int
	AbsenceDays           int
	WorkedDays            int

	// Hour totals
	ExpectedHours     float64
	TotalWorkedHours  float64
	BalanceHours      float64
	AverageDailyHours float64

	// Per-day lookups for calendar and report rendering
	Records        []record.AttendanceRecord
	RecordsByDate  map[string]*record.AttendanceRecord
	HolidaysByDate map[string]string
	HolidayDates   map[string]struct{}

	// Adjacent periods for navigation without recomputation
	PrevMonth int
	PrevYear  int
	NextMonth int
	NextYear  int
}

// MonthlyStatsResponse is the JSON shape served to the dashboard.
type MonthlyStatsResponse struct {
	UserID string `json:"user_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`

	PotentialBusinessDays int `json:"potential_business_days"`
	AbsenceDays           int `json:"absence_days"`
	WorkedDays            int `json:"worked_days"`

	ExpectedHours     float64 `json:"expected_hours"`
	TotalWorkedHours  float64 `json:"total_worked_hours"`
	BalanceHours      float64 `json:"balance_hours"`
	AverageDailyHours float64 `json:"average_daily_hours"`

	Records  []record.RecordResponse `json:"records"`
	Holidays map[string]string       `json:"holidays"`

	PrevMonth int `json:"prev_month"`
	PrevYear  int `json:"prev_year"`
	NextMonth int `json:"next_month"`
	NextYear  int `json:"next_year"`
}

func ToMonthlyStatsResponse(stats MonthlyStats) MonthlyStatsResponse {
	records := make([]record.RecordResponse, 0, len(stats.Records))
	for _, rec := range stats.Records {
		records = append(records, record.ToRecordResponse(rec))
	}

	return MonthlyStatsResponse{
		UserID:                stats.UserID,
		Month:                 stats.Month,
		Year:                  stats.Year,
		PotentialBusinessDays: stats.PotentialBusinessDays,
		AbsenceDays:           stats.AbsenceDays,
		WorkedDays:            stats.WorkedDays,
		ExpectedHours:         stats.ExpectedHours,
		TotalWorkedHours:      stats.TotalWorkedHours,
		BalanceHours:          stats.BalanceHours,
		AverageDailyHours:     stats.AverageDailyHours,
		Records:               records,
		Holidays:              stats.HolidaysByDate,
		PrevMonth:             stats.PrevMonth,
		PrevYear:              stats.PrevYear,
		NextMonth:             stats.NextMonth,
		NextYear:              stats.NextYear,
	}
}
