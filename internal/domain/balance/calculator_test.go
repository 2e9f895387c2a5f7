package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, hhmm string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return &parsed
}

var testDate = time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

func TestComputeWorkedHours_FullDayWithLunch(t *testing.T) {
	got := ComputeWorkedHours(testDate, clock(t, "08:00"), clock(t, "17:00"), clock(t, "12:00"), clock(t, "13:00"))

	require.NotNil(t, got)
	assert.Equal(t, 8.00, *got)
}

func TestComputeWorkedHours_MissingEntryOrExit(t *testing.T) {
	assert.Nil(t, ComputeWorkedHours(testDate, nil, clock(t, "17:00"), nil, nil))
	assert.Nil(t, ComputeWorkedHours(testDate, clock(t, "08:00"), nil, nil, nil))
	assert.Nil(t, ComputeWorkedHours(testDate, nil, nil, clock(t, "12:00"), clock(t, "13:00")))
}

func TestComputeWorkedHours_OvernightShift(t *testing.T) {
	got := ComputeWorkedHours(testDate, clock(t, "22:00"), clock(t, "06:00"), nil, nil)

	require.NotNil(t, got)
	assert.Equal(t, 8.00, *got)
}

func TestComputeWorkedHours_ShortLunchNotDeducted(t *testing.T) {
	got := ComputeWorkedHours(testDate, clock(t, "08:00"), clock(t, "17:00"), clock(t, "12:00"), clock(t, "12:30"))

	require.NotNil(t, got)
	assert.Equal(t, 9.00, *got)
}

func TestComputeWorkedHours_LunchOutsideWorkSpanNotDeducted(t *testing.T) {
	// Lunch window starting before the entry punch
	got := ComputeWorkedHours(testDate, clock(t, "09:00"), clock(t, "17:00"), clock(t, "08:00"), clock(t, "10:00"))

	require.NotNil(t, got)
	assert.Equal(t, 8.00, *got)

	// Lunch window ending after the exit punch
	got = ComputeWorkedHours(testDate, clock(t, "08:00"), clock(t, "17:00"), clock(t, "16:30"), clock(t, "18:00"))

	require.NotNil(t, got)
	assert.Equal(t, 9.00, *got)
}

func TestComputeWorkedHours_SingleLunchPunchIgnored(t *testing.T) {
	got := ComputeWorkedHours(testDate, clock(t, "08:00"), clock(t, "17:00"), clock(t, "12:00"), nil)

	require.NotNil(t, got)
	assert.Equal(t, 9.00, *got)

	got = ComputeWorkedHours(testDate, clock(t, "08:00"), clock(t, "17:00"), nil, clock(t, "13:00"))

	require.NotNil(t, got)
	assert.Equal(t, 9.00, *got)
}

func TestComputeWorkedHours_ExactlyOneHourLunchDeducted(t *testing.T) {
	got := ComputeWorkedHours(testDate, clock(t, "09:00"), clock(t, "18:30"), clock(t, "12:30"), clock(t, "13:30"))

	require.NotNil(t, got)
	assert.Equal(t, 8.50, *got)
}

func TestComputeWorkedHours_RoundsToTwoDecimals(t *testing.T) {
	// 8h25m = 8.4166... hours
	got := ComputeWorkedHours(testDate, clock(t, "08:05"), clock(t, "16:30"), nil, nil)

	require.NotNil(t, got)
	assert.Equal(t, 8.42, *got)
}

func TestComputeWorkedHours_ZeroSpan(t *testing.T) {
	got := ComputeWorkedHours(testDate, clock(t, "08:00"), clock(t, "08:00"), nil, nil)

	require.NotNil(t, got)
	assert.Equal(t, 0.00, *got)
}

func TestComputeWorkedHours_OvernightLunchWindow(t *testing.T) {
	// Night shift with a break crossing midnight: 22:00-06:00 span, 01:30-02:30 break
	got := ComputeWorkedHours(testDate, clock(t, "22:00"), clock(t, "06:00"), clock(t, "01:30"), clock(t, "02:30"))

	require.NotNil(t, got)
	// The break anchored on the same date falls before the entry punch, so it
	// lands outside the work span and is not deducted.
	assert.Equal(t, 8.00, *got)
}
