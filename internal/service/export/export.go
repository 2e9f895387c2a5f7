package export

import (
	"fmt"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
)

// MonthlyReport is the input for the report renderers: the subject user plus
// the precomputed statistics bundle for one month.
type MonthlyReport struct {
	User  user.UserResponse
	Stats balance.MonthlyStats
}

type ExportService interface {
	RenderXLSX(report MonthlyReport) ([]byte, error)
	RenderPDF(report MonthlyReport) ([]byte, error)
}

type ExportServiceImpl struct{}

func NewExportService() ExportService {
	return &ExportServiceImpl{}
}

// dayRow is one rendered line of the per-day report table.
type dayRow struct {
	Date     string
	Weekday  string
	Status   string
	Entry    string
	LunchOut string
	LunchIn  string
	Exit     string
	Hours    string
	Notes    string
}

func punchCell(t *time.Time) string {
	if s := record.FormatTimeOfDay(t); s != nil {
		return *s
	}
	return "-"
}

// classifyDay mirrors the aggregator's day classification so the report and
// the dashboard always agree on what each calendar day was.
func classifyDay(date time.Time, stats balance.MonthlyStats) dayRow {
	key := balance.DateKey(date)
	row := dayRow{
		Date:     key,
		Weekday:  date.Weekday().String(),
		Entry:    "-",
		LunchOut: "-",
		LunchIn:  "-",
		Exit:     "-",
		Hours:    "-",
	}

	if desc, ok := stats.HolidaysByDate[key]; ok {
		row.Status = "Holiday: " + desc
		return row
	}
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		row.Status = "Weekend"
		return row
	}

	rec, ok := stats.RecordsByDate[key]
	if !ok {
		row.Status = "No record"
		return row
	}

	if rec.Notes != nil {
		row.Notes = *rec.Notes
	}

	if rec.IsAbsence {
		row.Status = "Absence"
		if rec.AbsenceCategory != nil {
			row.Status = fmt.Sprintf("Absence (%s)", *rec.AbsenceCategory)
		}
		return row
	}

	row.Entry = punchCell(rec.EntryTime)
	row.LunchOut = punchCell(rec.LunchOutTime)
	row.LunchIn = punchCell(rec.LunchInTime)
	row.Exit = punchCell(rec.ExitTime)

	if rec.WorkedHours == nil {
		row.Status = "Pending"
		return row
	}

	row.Status = "Worked"
	row.Hours = fmt.Sprintf("%.2f", *rec.WorkedHours)
	return row
}

// monthRows renders every calendar day of the report's month in order.
func monthRows(stats balance.MonthlyStats) []dayRow {
	firstDay := time.Date(stats.Year, time.Month(stats.Month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	var rows []dayRow
	for d := firstDay; !d.After(lastDay); d = d.AddDate(0, 0, 1) {
		rows = append(rows, classifyDay(d, stats))
	}
	return rows
}

func reportTitle(stats balance.MonthlyStats) string {
	month := time.Month(stats.Month).String()
	return fmt.Sprintf("Monthly Attendance Report - %s %d", month, stats.Year)
}

// summaryPairs lists the summary block labels and values in render order.
func summaryPairs(report MonthlyReport) [][2]string {
	stats := report.Stats
	return [][2]string{
		{"Employee", report.User.Name},
		{"Registration", report.User.Registration},
		{"Business days", fmt.Sprintf("%d", stats.PotentialBusinessDays)},
		{"Absence days", fmt.Sprintf("%d", stats.AbsenceDays)},
		{"Worked days", fmt.Sprintf("%d", stats.WorkedDays)},
		{"Expected hours", fmt.Sprintf("%.2f", stats.ExpectedHours)},
		{"Worked hours", fmt.Sprintf("%.2f", stats.TotalWorkedHours)},
		{"Balance", fmt.Sprintf("%+.2f", stats.BalanceHours)},
		{"Average per worked day", fmt.Sprintf("%.2f", stats.AverageDailyHours)},
	}
}
