package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testReport() MonthlyReport {
	hours := 8.0
	category := record.AbsenceVacation
	notes := "Sprint review"

	worked := &record.AttendanceRecord{
		UserID:      "user-1",
		Date:        time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		WorkedHours: &hours,
		Notes:       &notes,
	}
	absence := &record.AttendanceRecord{
		UserID:          "user-1",
		Date:            time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		IsAbsence:       true,
		AbsenceCategory: &category,
	}

	return MonthlyReport{
		User: user.UserResponse{
			Name:         "Maria Souza",
			Registration: "EMP1042",
		},
		Stats: balance.MonthlyStats{
			UserID:                "user-1",
			Month:                 4,
			Year:                  2024,
			PotentialBusinessDays: 21,
			AbsenceDays:           1,
			WorkedDays:            1,
			ExpectedHours:         160,
			TotalWorkedHours:      8,
			BalanceHours:          -152,
			AverageDailyHours:     8,
			RecordsByDate: map[string]*record.AttendanceRecord{
				"2024-04-01": worked,
				"2024-04-02": absence,
			},
			HolidaysByDate: map[string]string{
				"2024-04-23": "Feriado municipal",
			},
		},
	}
}

func TestClassifyDay(t *testing.T) {
	report := testReport()

	tests := []struct {
		date   time.Time
		status string
		hours  string
	}{
		{time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "Worked", "8.00"},
		{time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC), "Absence (vacation)", "-"},
		{time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC), "Weekend", "-"},
		{time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC), "No record", "-"},
		{time.Date(2024, time.April, 23, 0, 0, 0, 0, time.UTC), "Holiday: Feriado municipal", "-"},
	}

	for _, tc := range tests {
		row := classifyDay(tc.date, report.Stats)
		assert.Equal(t, tc.status, row.Status, tc.date.Format("2006-01-02"))
		assert.Equal(t, tc.hours, row.Hours, tc.date.Format("2006-01-02"))
	}
}

func TestClassifyDay_PendingRecord(t *testing.T) {
	report := testReport()
	entry := time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)
	report.Stats.RecordsByDate["2024-04-03"] = &record.AttendanceRecord{
		UserID:    "user-1",
		Date:      time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC),
		EntryTime: &entry,
	}

	row := classifyDay(time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC), report.Stats)

	assert.Equal(t, "Pending", row.Status)
	assert.Equal(t, "08:00", row.Entry)
	assert.Equal(t, "-", row.Exit)
}

func TestMonthRows_CoversWholeMonth(t *testing.T) {
	rows := monthRows(testReport().Stats)

	require.Len(t, rows, 30)
	assert.Equal(t, "2024-04-01", rows[0].Date)
	assert.Equal(t, "2024-04-30", rows[29].Date)
}

func TestRenderXLSX(t *testing.T) {
	svc := NewExportService()

	data, err := svc.RenderXLSX(testReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Attendance Report - April 2024", title)

	employee, err := f.GetCellValue("Attendance", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", employee)

	// Summary occupies rows 3-11, the table header row 13, data from row 14.
	firstDate, err := f.GetCellValue("Attendance", "A14")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", firstDate)

	firstStatus, err := f.GetCellValue("Attendance", "C14")
	require.NoError(t, err)
	assert.Equal(t, "Worked", firstStatus)

	firstHours, err := f.GetCellValue("Attendance", "H14")
	require.NoError(t, err)
	assert.Equal(t, "8.00", firstHours)

	absenceStatus, err := f.GetCellValue("Attendance", "C15")
	require.NoError(t, err)
	assert.Equal(t, "Absence (vacation)", absenceStatus)
}

func TestRenderPDF(t *testing.T) {
	svc := NewExportService()

	data, err := svc.RenderPDF(testReport())

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
