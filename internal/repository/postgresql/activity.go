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

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) record.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create implements record.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, act record.Activity) (record.Activity, error) {
	q := GetQuerier(ctx, r.db)

	if act.ID == "" {
		act.ID = uuid.NewString()
	}

	query := `
		INSERT INTO activities (id, record_id, description)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, act.ID, act.RecordID, act.Description).Scan(&act.CreatedAt, &act.UpdatedAt)
	if err != nil {
		return record.Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}

	return act, nil
}

// GetByID implements record.ActivityRepository.
func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (record.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, record_id, description, created_at, updated_at
		FROM activities
		WHERE id = $1
	`

	var act record.Activity
	err := q.QueryRow(ctx, query, id).Scan(&act.ID, &act.RecordID, &act.Description, &act.CreatedAt, &act.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return record.Activity{}, record.ErrActivityNotFound
		}
		return record.Activity{}, fmt.Errorf("failed to get activity by ID: %w", err)
	}

	return act, nil
}

// ListByRecord implements record.ActivityRepository.
func (r *activityRepositoryImpl) ListByRecord(ctx context.Context, recordID string) ([]record.Activity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, record_id, description, created_at, updated_at
		FROM activities
		WHERE record_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []record.Activity
	for rows.Next() {
		var act record.Activity
		if err := rows.Scan(&act.ID, &act.RecordID, &act.Description, &act.CreatedAt, &act.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, act)
	}

	return activities, nil
}

// Update implements record.ActivityRepository.
func (r *activityRepositoryImpl) Update(ctx context.Context, act record.Activity) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE activities
		SET description = $1, updated_at = $2
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, act.Description, time.Now(), act.ID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return record.ErrActivityNotFound
		}
		return fmt.Errorf("failed to update activity: %w", err)
	}

	return nil
}

// Delete implements record.ActivityRepository.
func (r *activityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return record.ErrActivityNotFound
	}

	return nil
}
