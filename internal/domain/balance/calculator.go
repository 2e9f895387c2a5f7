package balance

import (
	"log/slog"
	"math"
	"time"
)

// MinLunchInterval is the shortest lunch window that counts as a real break.
// Anything shorter is treated as a mispunch and ignored.
const MinLunchInterval = time.Hour

// combine anchors a time-of-day value on a calendar date.
func combine(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}

// ComputeWorkedHours converts one day's punches into a worked-hours figure.
//
// Entry and exit are mandatory; without both the day is still pending and the
// result is nil. An exit clock-time earlier than the entry rolls over to the
// following day (overnight shift), and the lunch window rolls over the same
// way. The lunch interval is deducted only when it falls entirely inside the
// work span and lasts at least MinLunchInterval; otherwise the punches are
// kept but the deduction is skipped and a diagnostic is logged. A single
// lunch punch is ignored entirely.
//
// The result is clamped at zero and rounded to two decimal places. The
// function never fails: bad input degrades to nil (pending) or to a
// no-deduction computation, so callers can distinguish "no data yet" from
// "zero hours worked".
func ComputeWorkedHours(date time.Time, entry, exit, lunchOut, lunchIn *time.Time) *float64 {
	if entry == nil || exit == nil {
		return nil
	}

	entryAt := combine(date, *entry)
	exitAt := combine(date, *exit)
	if exitAt.Before(entryAt) {
		exitAt = exitAt.AddDate(0, 0, 1)
	}

	total := exitAt.Sub(entryAt)

	if lunchOut != nil && lunchIn != nil {
		lunchStart := combine(date, *lunchOut)
		lunchEnd := combine(date, *lunchIn)
		if lunchEnd.Before(lunchStart) {
			lunchEnd = lunchEnd.AddDate(0, 0, 1)
		}
		lunchInterval := lunchEnd.Sub(lunchStart)

		switch {
		case lunchStart.Before(entryAt) || lunchEnd.After(exitAt):
			slog.Warn("lunch interval outside work span, deduction skipped",
				"date", date.Format("2006-01-02"),
				"lunch_out", lunchOut.Format("15:04"),
				"lunch_in", lunchIn.Format("15:04"),
			)
		case lunchInterval < MinLunchInterval:
			slog.Warn("lunch interval under one hour, deduction skipped",
				"date", date.Format("2006-01-02"),
				"lunch_minutes", lunchInterval.Minutes(),
			)
		default:
			total -= lunchInterval
		}
	}

	if total < 0 {
		total = 0
	}

	hours := math.Round(total.Seconds()/3600*100) / 100
	return &hours
}
