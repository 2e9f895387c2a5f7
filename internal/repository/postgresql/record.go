package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

const recordColumns = `r.id, r.user_id, r.date, r.entry_time, r.lunch_out_time, r.lunch_in_time,
	   r.exit_time, r.is_absence, r.absence_category, r.notes, r.results,
	   r.worked_hours, r.created_at, r.updated_at`

func scanRecord(row pgx.Row, withUserName bool) (record.AttendanceRecord, error) {
	var rec record.AttendanceRecord
	dest := []interface{}{
		&rec.ID, &rec.UserID, &rec.Date, &rec.EntryTime, &rec.LunchOutTime, &rec.LunchInTime,
		&rec.ExitTime, &rec.IsAbsence, &rec.AbsenceCategory, &rec.Notes, &rec.Results,
		&rec.WorkedHours, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &rec.UserName)
	}
	err := row.Scan(dest...)
	return rec, err
}

// Create implements record.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, rec record.AttendanceRecord) (record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, user_id, date, entry_time, lunch_out_time, lunch_in_time, exit_time,
			is_absence, absence_category, notes, results, worked_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.EntryTime,
		rec.LunchOutTime,
		rec.LunchInTime,
		rec.ExitTime,
		rec.IsAbsence,
		rec.AbsenceCategory,
		rec.Notes,
		rec.Results,
		rec.WorkedHours,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "attendance_records_user_id_date_key") {
			return record.AttendanceRecord{}, record.ErrRecordAlreadyExists
		}
		return record.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id string) (record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `,
			u.name AS user_name
		FROM attendance_records r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return record.AttendanceRecord{}, record.ErrRecordNotFound
		}
		return record.AttendanceRecord{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	activities, err := r.loadActivities(ctx, q, []string{rec.ID})
	if err != nil {
		return record.AttendanceRecord{}, err
	}
	rec.Activities = activities[rec.ID]

	return rec, nil
}

// GetByUserAndDate implements record.RecordRepository.
func (r *recordRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records r
		WHERE r.user_id = $1
		  AND r.date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, userID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing record found
		}
		return nil, fmt.Errorf("failed to get attendance record by user and date: %w", err)
	}

	return &rec, nil
}

// FindByUserAndDateRange implements record.RecordRepository.
func (r *recordRepositoryImpl) FindByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]record.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `,
			u.name AS user_name
		FROM attendance_records r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		  AND r.date >= $2
		  AND r.date <= $3
		ORDER BY r.date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []record.AttendanceRecord
	var ids []string
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
		ids = append(ids, rec.ID)
	}

	if len(records) == 0 {
		return records, nil
	}

	activities, err := r.loadActivities(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Activities = activities[records[i].ID]
	}

	return records, nil
}

// loadActivities fetches the activities of a set of records in one query.
func (r *recordRepositoryImpl) loadActivities(ctx context.Context, q database.Querier, recordIDs []string) (map[string][]record.Activity, error) {
	query := `
		SELECT id, record_id, description, created_at, updated_at
		FROM activities
		WHERE record_id = ANY($1)
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]record.Activity)
	for rows.Next() {
		var act record.Activity
		if err := rows.Scan(&act.ID, &act.RecordID, &act.Description, &act.CreatedAt, &act.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		result[act.RecordID] = append(result[act.RecordID], act)
	}

	return result, nil
}

// Update implements record.RecordRepository.
func (r *recordRepositoryImpl) Update(ctx context.Context, rec record.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET entry_time = $1, lunch_out_time = $2, lunch_in_time = $3, exit_time = $4,
			is_absence = $5, absence_category = $6, notes = $7, results = $8,
			worked_hours = $9, updated_at = $10
		WHERE id = $11
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.EntryTime,
		rec.LunchOutTime,
		rec.LunchInTime,
		rec.ExitTime,
		rec.IsAbsence,
		rec.AbsenceCategory,
		rec.Notes,
		rec.Results,
		rec.WorkedHours,
		time.Now(),
		rec.ID,
	).Scan(&updatedID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return record.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// Delete implements record.RecordRepository.
func (r *recordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}

	return nil
}
