package record

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
)

type RecordServiceImpl struct {
	db *database.DB
	record.RecordRepository
	record.ActivityRepository
}

func NewRecordService(
	db *database.DB,
	recordRepo record.RecordRepository,
	activityRepo record.ActivityRepository,
) record.RecordService {
	return &RecordServiceImpl{
		db:                 db,
		RecordRepository:   recordRepo,
		ActivityRepository: activityRepo,
	}
}

// claimsIdentity extracts the actor's identity from the JWT claims.
func claimsIdentity(ctx context.Context) (userID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false, fmt.Errorf("user_id claim is missing or invalid")
	}

	isAdmin, _ = claims["is_admin"].(bool)
	return userID, isAdmin, nil
}

// applyPunches writes the request's punches, absence fields, and text fields
// onto the record and recomputes the cached worked-hours value. An absence
// clears the punches and the hours; missing entry or exit leaves the hours
// null (pending).
func applyPunches(rec *record.AttendanceRecord, punches record.PunchFields, isAbsence bool, category *string, notes, results *string) {
	rec.IsAbsence = isAbsence
	rec.Notes = notes
	rec.Results = results

	if isAbsence {
		cat := record.AbsenceCategory(*category)
		rec.AbsenceCategory = &cat
		rec.EntryTime = nil
		rec.LunchOutTime = nil
		rec.LunchInTime = nil
		rec.ExitTime = nil
		rec.WorkedHours = nil
		return
	}

	rec.AbsenceCategory = nil
	rec.EntryTime, rec.LunchOutTime, rec.LunchInTime, rec.ExitTime = punches.ParsedPunches()
	rec.WorkedHours = balance.ComputeWorkedHours(rec.Date, rec.EntryTime, rec.ExitTime, rec.LunchOutTime, rec.LunchInTime)
}

// Create implements record.RecordService.
func (s *RecordServiceImpl) Create(ctx context.Context, req record.CreateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return record.RecordResponse{}, err
	}

	// Admins may create records on behalf of other users.
	ownerID := actorID
	if req.UserID != "" && req.UserID != actorID {
		if !isAdmin {
			return record.RecordResponse{}, record.ErrUnauthorized
		}
		ownerID = req.UserID
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	newRecord := record.AttendanceRecord{
		UserID: ownerID,
		Date:   date,
	}
	applyPunches(&newRecord, req.PunchFields, req.IsAbsence, req.AbsenceCategory, req.Notes, req.Results)

	var created record.AttendanceRecord
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.RecordRepository.GetByUserAndDate(txCtx, ownerID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			return record.ErrRecordAlreadyExists
		}

		created, err = s.RecordRepository.Create(txCtx, newRecord)
		if err != nil {
			return err
		}

		for _, description := range req.Activities {
			act, err := s.ActivityRepository.Create(txCtx, record.Activity{
				RecordID:    created.ID,
				Description: description,
			})
			if err != nil {
				return err
			}
			created.Activities = append(created.Activities, act)
		}

		return nil
	})
	if err != nil {
		return record.RecordResponse{}, err
	}

	return record.ToRecordResponse(created), nil
}

// Get implements record.RecordService.
func (s *RecordServiceImpl) Get(ctx context.Context, id string) (record.RecordResponse, error) {
	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return record.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return record.RecordResponse{}, err
	}

	if rec.UserID != actorID && !isAdmin {
		return record.RecordResponse{}, record.ErrUnauthorized
	}

	return record.ToRecordResponse(rec), nil
}

// ListMine implements record.RecordService.
func (s *RecordServiceImpl) ListMine(ctx context.Context, filter record.ListMyRecordsFilter) ([]record.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	actorID, _, err := claimsIdentity(ctx)
	if err != nil {
		return nil, err
	}

	// Default to the current month when no range is given.
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	if filter.StartDate != nil && *filter.StartDate != "" {
		start, _ = time.Parse("2006-01-02", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		end, _ = time.Parse("2006-01-02", *filter.EndDate)
	}

	records, err := s.RecordRepository.FindByUserAndDateRange(ctx, actorID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, record.ToRecordResponse(rec))
	}

	return responses, nil
}

// Update implements record.RecordService.
func (s *RecordServiceImpl) Update(ctx context.Context, req record.UpdateRecordRequest) (record.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return record.RecordResponse{}, err
	}

	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return record.RecordResponse{}, err
	}

	var updated record.AttendanceRecord
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.RecordRepository.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if rec.UserID != actorID && !isAdmin {
			return record.ErrUnauthorized
		}

		applyPunches(&rec, req.PunchFields, req.IsAbsence, req.AbsenceCategory, req.Notes, req.Results)

		if err := s.RecordRepository.Update(txCtx, rec); err != nil {
			return err
		}

		updated = rec
		return nil
	})
	if err != nil {
		return record.RecordResponse{}, err
	}

	return record.ToRecordResponse(updated), nil
}

// Delete implements record.RecordService.
func (s *RecordServiceImpl) Delete(ctx context.Context, id string) error {
	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return err
	}

	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.UserID != actorID && !isAdmin {
		return record.ErrUnauthorized
	}

	// Activities cascade through the foreign key.
	return s.RecordRepository.Delete(ctx, id)
}

// AddActivity implements record.RecordService.
func (s *RecordServiceImpl) AddActivity(ctx context.Context, req record.AddActivityRequest) (record.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return record.ActivityResponse{}, err
	}

	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return record.ActivityResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return record.ActivityResponse{}, err
	}
	if rec.UserID != actorID && !isAdmin {
		return record.ActivityResponse{}, record.ErrUnauthorized
	}

	act, err := s.ActivityRepository.Create(ctx, record.Activity{
		RecordID:    rec.ID,
		Description: req.Description,
	})
	if err != nil {
		return record.ActivityResponse{}, fmt.Errorf("failed to create activity: %w", err)
	}

	return record.ActivityResponse{
		ID:          act.ID,
		RecordID:    act.RecordID,
		Description: act.Description,
	}, nil
}

// UpdateActivity implements record.RecordService.
func (s *RecordServiceImpl) UpdateActivity(ctx context.Context, req record.UpdateActivityRequest) (record.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return record.ActivityResponse{}, err
	}

	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return record.ActivityResponse{}, err
	}

	act, err := s.ActivityRepository.GetByID(ctx, req.ID)
	if err != nil {
		return record.ActivityResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, act.RecordID)
	if err != nil {
		return record.ActivityResponse{}, err
	}
	if rec.UserID != actorID && !isAdmin {
		return record.ActivityResponse{}, record.ErrUnauthorized
	}

	act.Description = req.Description
	if err := s.ActivityRepository.Update(ctx, act); err != nil {
		return record.ActivityResponse{}, err
	}

	return record.ActivityResponse{
		ID:          act.ID,
		RecordID:    act.RecordID,
		Description: act.Description,
	}, nil
}

// DeleteActivity implements record.RecordService.
func (s *RecordServiceImpl) DeleteActivity(ctx context.Context, id string) error {
	actorID, isAdmin, err := claimsIdentity(ctx)
	if err != nil {
		return err
	}

	act, err := s.ActivityRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	rec, err := s.RecordRepository.GetByID(ctx, act.RecordID)
	if err != nil {
		return err
	}
	if rec.UserID != actorID && !isAdmin {
		return record.ErrUnauthorized
	}

	return s.ActivityRepository.Delete(ctx, id)
}
