package balance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY TEST DOUBLES =====

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) Update(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeRecordRepo struct {
	records []record.AttendanceRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, rec record.AttendanceRecord) (record.AttendanceRecord, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, _ string) (record.AttendanceRecord, error) {
	return record.AttendanceRecord{}, record.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByUserAndDate(_ context.Context, _ string, _ time.Time) (*record.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeRecordRepo) FindByUserAndDateRange(_ context.Context, userID string, start, end time.Time) ([]record.AttendanceRecord, error) {
	var result []record.AttendanceRecord
	for _, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, _ record.AttendanceRecord) error { return nil }

func (f *fakeRecordRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var result []holiday.Holiday
	for _, h := range f.holidays {
		if h.Date.Before(start) || h.Date.After(end) {
			continue
		}
		result = append(result, h)
	}
	return result, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, _ string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) Update(_ context.Context, _ holiday.Holiday) error { return nil }

func (f *fakeHolidayRepo) Delete(_ context.Context, _ string) error { return nil }

// ===== HELPERS =====

const testUserID = "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"

func newTestService(records []record.AttendanceRecord, holidays []holiday.Holiday) balance.BalanceService {
	users := &fakeUserRepo{users: map[string]user.User{
		testUserID: {ID: testUserID, Name: "Maria Souza", Email: "maria@example.com"},
	}}
	return NewBalanceService(users, &fakeRecordRepo{records: records}, &fakeHolidayRepo{holidays: holidays})
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func hoursPtr(h float64) *float64 { return &h }

func workedRecord(date time.Time, hours float64) record.AttendanceRecord {
	return record.AttendanceRecord{
		UserID:      testUserID,
		Date:        date,
		WorkedHours: hoursPtr(hours),
	}
}

func absenceRecord(date time.Time, category record.AbsenceCategory) record.AttendanceRecord {
	return record.AttendanceRecord{
		UserID:          testUserID,
		Date:            date,
		IsAbsence:       true,
		AbsenceCategory: &category,
	}
}

// ===== BALANCE SERVICE TESTS =====

// April 2024 starts on a Monday, has 30 days, 22 weekdays, and no holidays in
// these fixtures.

func TestComputeMonthlyStatistics_EmptyMonth(t *testing.T) {
	t.Parallel()
	svc := newTestService(nil, nil)

	stats, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)

	require.NoError(t, err)
	assert.Equal(t, 22, stats.PotentialBusinessDays)
	assert.Equal(t, 0, stats.AbsenceDays)
	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 176.0, stats.ExpectedHours)
	assert.Equal(t, 0.0, stats.TotalWorkedHours)
	assert.Equal(t, -176.0, stats.BalanceHours)
	assert.Equal(t, 0.0, stats.AverageDailyHours)
}

func TestComputeMonthlyStatistics_WorkedDays(t *testing.T) {
	t.Parallel()
	svc := newTestService([]record.AttendanceRecord{
		workedRecord(day(2024, time.April, 1), 8.0),
		workedRecord(day(2024, time.April, 2), 9.5),
	}, nil)

	stats, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)

	require.NoError(t, err)
	assert.Equal(t, 22, stats.PotentialBusinessDays)
	assert.Equal(t, 2, stats.WorkedDays)
	assert.Equal(t, 17.5, stats.TotalWorkedHours)
	assert.Equal(t, 176.0, stats.ExpectedHours)
	assert.Equal(t, 17.5-176.0, stats.BalanceHours)
	assert.Equal(t, 8.75, stats.AverageDailyHours)
}

func TestComputeMonthlyStatistics_AbsenceExcusesExpectation(t *testing.T) {
	t.Parallel()
	svc := newTestService([]record.AttendanceRecord{
		// Wednesday April 3rd
		absenceRecord(day(2024, time.April, 3), record.AbsenceVacation),
		workedRecord(day(2024, time.April, 4), 8.0),
	}, nil)

	stats, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)

	require.NoError(t, err)
	assert.Equal(t, 22, stats.PotentialBusinessDays)
	assert.Equal(t, 1, stats.AbsenceDays)
	// One absence removes exactly one standard workday from the expectation.
	assert.Equal(t, 168.0, stats.ExpectedHours)
	assert.Equal(t, 8.0, stats.TotalWorkedHours)
	assert.Equal(t, 1, stats.WorkedDays)
}

func TestComputeMonthlyStatistics_HolidayOnWeekday(t *testing.T) {
	t.Parallel()
	// Tuesday April 23rd is a holiday; an absence record on that date must
	// not count as an absence day because the day is no longer a potential
	// business day.
	svc := newTestService([]record.AttendanceRecord{
		absenceRecord(day(2024, time.April, 23), record.AbsenceExcused),
	}, []holiday.Holiday{
		{Date: day(2024, time.April, 23), Description: "Feriado municipal"},
	})

	stats, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)

	require.NoError(t, err)
	assert.Equal(t, 21, stats.PotentialBusinessDays)
	assert.Equal(t, 0, stats.AbsenceDays)
	assert.Equal(t, 168.0, stats.ExpectedHours)
	assert.Contains(t, stats.HolidaysByDate, "2024-04-23")
}

func TestComputeMonthlyStatistics_WeekendRecordDoesNotContribute(t *testing.T) {
	t.Parallel()
	// Saturday April 6th with computed hours: not a business day, so it is
	// excluded from worked-day totals.
	svc := newTestService([]record.AttendanceRecord{
		workedRecord(day(2024, time.April, 6), 4.0),
	}, nil)

	stats, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 0.0, stats.TotalWorkedHours)
}

func TestComputeMonthlyStatistics_PendingRecordDoesNotContribute(t *testing.T) {
	t.Parallel()
	entry := time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService([]record.AttendanceRecord{
		// Entry punch only: worked hours still pending.
		{UserID: testUserID, Date: day(2024, time.April, 8), EntryTime: &entry},
	}, nil)

	stats, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.WorkedDays)
	assert.Equal(t, 0.0, stats.TotalWorkedHours)
	assert.Contains(t, stats.RecordsByDate, "2024-04-08")
}

func TestComputeMonthlyStatistics_PeriodNavigation(t *testing.T) {
	t.Parallel()
	svc := newTestService(nil, nil)

	january, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 1, 2024)
	require.NoError(t, err)
	assert.Equal(t, 12, january.PrevMonth)
	assert.Equal(t, 2023, january.PrevYear)
	assert.Equal(t, 2, january.NextMonth)
	assert.Equal(t, 2024, january.NextYear)

	december, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 12, 2024)
	require.NoError(t, err)
	assert.Equal(t, 11, december.PrevMonth)
	assert.Equal(t, 2024, december.PrevYear)
	assert.Equal(t, 1, december.NextMonth)
	assert.Equal(t, 2025, december.NextYear)
}

func TestComputeMonthlyStatistics_Idempotent(t *testing.T) {
	t.Parallel()
	svc := newTestService([]record.AttendanceRecord{
		workedRecord(day(2024, time.April, 1), 8.0),
		absenceRecord(day(2024, time.April, 2), record.AbsenceMedicalLeave),
	}, []holiday.Holiday{
		{Date: day(2024, time.April, 19), Description: "Feriado"},
	})

	first, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)
	require.NoError(t, err)
	second, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 4, 2024)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeMonthlyStatistics_InvalidMonth(t *testing.T) {
	t.Parallel()
	svc := newTestService(nil, nil)

	_, err := svc.ComputeMonthlyStatistics(context.Background(), testUserID, 13, 2024)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "month")
}

func TestComputeMonthlyStatistics_UserNotFound(t *testing.T) {
	t.Parallel()
	svc := newTestService(nil, nil)

	_, err := svc.ComputeMonthlyStatistics(context.Background(), "0188d0f2-7b8c-7b4a-8a2b-000000000000", 4, 2024)

	assert.True(t, errors.Is(err, user.ErrUserNotFound))
}
