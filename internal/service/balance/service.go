package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type BalanceServiceImpl struct {
	user.UserRepository
	record.RecordRepository
	holiday.HolidayRepository
}

func NewBalanceService(
	userRepo user.UserRepository,
	recordRepo record.RecordRepository,
	holidayRepo holiday.HolidayRepository,
) balance.BalanceService {
	return &BalanceServiceImpl{
		UserRepository:    userRepo,
		RecordRepository:  recordRepo,
		HolidayRepository: holidayRepo,
	}
}

// isBusinessDay classifies a day: Monday through Friday and not a holiday.
func isBusinessDay(d time.Time, holidayDates map[string]struct{}) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, isHoliday := holidayDates[balance.DateKey(d)]
	return !isHoliday
}

// adjacentPeriods returns the previous and next (month, year) pairs with the
// December/January wrap.
func adjacentPeriods(month, year int) (prevMonth, prevYear, nextMonth, nextYear int) {
	prevMonth, prevYear = month-1, year
	if month == 1 {
		prevMonth, prevYear = 12, year-1
	}
	nextMonth, nextYear = month+1, year
	if month == 12 {
		nextMonth, nextYear = 1, year+1
	}
	return prevMonth, prevYear, nextMonth, nextYear
}

// ComputeMonthlyStatistics implements balance.BalanceService.
func (s *BalanceServiceImpl) ComputeMonthlyStatistics(ctx context.Context, userID string, month, year int) (balance.MonthlyStats, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if len(errs) > 0 {
		return balance.MonthlyStats{}, errs
	}

	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return balance.MonthlyStats{}, err
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	records, err := s.RecordRepository.FindByUserAndDateRange(ctx, userID, firstDay, lastDay)
	if err != nil {
		return balance.MonthlyStats{}, fmt.Errorf("failed to load attendance records: %w", err)
	}

	holidays, err := s.HolidayRepository.FindByDateRange(ctx, firstDay, lastDay)
	if err != nil {
		return balance.MonthlyStats{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	holidayDates := make(map[string]struct{}, len(holidays))
	holidaysByDate := make(map[string]string, len(holidays))
	for _, h := range holidays {
		key := balance.DateKey(h.Date)
		holidayDates[key] = struct{}{}
		holidaysByDate[key] = h.Description
	}

	recordsByDate := make(map[string]*record.AttendanceRecord, len(records))
	for i := range records {
		recordsByDate[balance.DateKey(records[i].Date)] = &records[i]
	}

	stats := balance.MonthlyStats{
		UserID:         userID,
		Month:          month,
		Year:           year,
		Records:        records,
		RecordsByDate:  recordsByDate,
		HolidaysByDate: holidaysByDate,
		HolidayDates:   holidayDates,
	}

	// Classify every day of the month. Weekends and holidays never count
	// toward the expectation, and an absence on such a day is not flagged.
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		if !isBusinessDay(d, holidayDates) {
			continue
		}
		stats.PotentialBusinessDays++
		if rec, ok := recordsByDate[balance.DateKey(d)]; ok && rec.IsAbsence {
			stats.AbsenceDays++
		}
	}

	// Sum hours over the records. Only business-day records with a computed
	// worked-hours value contribute; pending days (missing punches) and
	// absences do not.
	for i := range records {
		rec := &records[i]
		if rec.IsAbsence || rec.WorkedHours == nil {
			continue
		}
		if !isBusinessDay(rec.Date, holidayDates) {
			continue
		}
		stats.WorkedDays++
		stats.TotalWorkedHours += *rec.WorkedHours
	}

	// Absence days excuse the day from the expectation before the standard
	// workday multiplier is applied.
	stats.ExpectedHours = float64(stats.PotentialBusinessDays-stats.AbsenceDays) * balance.StandardWorkdayHours
	stats.BalanceHours = stats.TotalWorkedHours - stats.ExpectedHours
	if stats.WorkedDays > 0 {
		stats.AverageDailyHours = stats.TotalWorkedHours / float64(stats.WorkedDays)
	}

	stats.PrevMonth, stats.PrevYear, stats.NextMonth, stats.NextYear = adjacentPeriods(month, year)

	return stats, nil
}
