package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/balance"
	"github.com/pontolabs/ponto-backend-go/internal/domain/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/domain/record"
	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects to TEST_DATABASE_URL, or skips the test when the
// variable is unset. Run migrations/0001_init.sql against the test database
// before running these.
func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"refresh_tokens", "activities", "attendance_records", "holidays", "users"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, db *database.DB, email, registration string) user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashed)

	created, err := postgresql.NewUserRepository(db).Create(ctx, user.User{
		Name:         "Test User",
		Email:        email,
		Registration: registration,
		PasswordHash: &hashedStr,
	})
	require.NoError(t, err)
	return created
}

func timeOfDay(hour, minute int) *time.Time {
	t := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

// ===== ATTENDANCE RECORD REPOSITORY TESTS =====

func TestRecordRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	u := createTestUser(t, ctx, db, "record-create@example.com", "EMP0001")
	repo := postgresql.NewRecordRepository(db)

	date := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	rec := record.AttendanceRecord{
		UserID:       u.ID,
		Date:         date,
		EntryTime:    timeOfDay(8, 0),
		LunchOutTime: timeOfDay(12, 0),
		LunchInTime:  timeOfDay(13, 0),
		ExitTime:     timeOfDay(17, 0),
	}
	rec.WorkedHours = balance.ComputeWorkedHours(date, rec.EntryTime, rec.ExitTime, rec.LunchOutTime, rec.LunchInTime)
	require.NotNil(t, rec.WorkedHours)

	created, err := repo.Create(ctx, rec)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, u.ID, got.UserID)
	assert.Equal(t, "2024-04-01", got.Date.Format("2006-01-02"))
	assert.Equal(t, "08:00", *record.FormatTimeOfDay(got.EntryTime))
	assert.Equal(t, "17:00", *record.FormatTimeOfDay(got.ExitTime))
	require.NotNil(t, got.UserName)
	assert.Equal(t, "Test User", *got.UserName)

	// The stored punches must reproduce the cached worked-hours value.
	recomputed := balance.ComputeWorkedHours(got.Date, got.EntryTime, got.ExitTime, got.LunchOutTime, got.LunchInTime)
	require.NotNil(t, recomputed)
	require.NotNil(t, got.WorkedHours)
	assert.Equal(t, *recomputed, *got.WorkedHours)
	assert.Equal(t, 8.0, *got.WorkedHours)
}

func TestRecordRepository_DuplicateDate(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	u := createTestUser(t, ctx, db, "record-dup@example.com", "EMP0002")
	repo := postgresql.NewRecordRepository(db)

	date := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, record.AttendanceRecord{UserID: u.ID, Date: date})
	require.NoError(t, err)

	_, err = repo.Create(ctx, record.AttendanceRecord{UserID: u.ID, Date: date})
	assert.ErrorIs(t, err, record.ErrRecordAlreadyExists)
}

func TestRecordRepository_GetByUserAndDate_NoRecord(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	u := createTestUser(t, ctx, db, "record-none@example.com", "EMP0003")
	repo := postgresql.NewRecordRepository(db)

	got, err := repo.GetByUserAndDate(ctx, u.ID, time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordRepository_FindByUserAndDateRange(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	u := createTestUser(t, ctx, db, "record-range@example.com", "EMP0004")
	repo := postgresql.NewRecordRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	var created []record.AttendanceRecord
	for day := 3; day >= 1; day-- {
		rec, err := repo.Create(ctx, record.AttendanceRecord{
			UserID: u.ID,
			Date:   time.Date(2024, time.April, day, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		created = append(created, rec)
	}

	_, err := activityRepo.Create(ctx, record.Activity{
		RecordID:    created[0].ID,
		Description: "Code review",
	})
	require.NoError(t, err)

	records, err := repo.FindByUserAndDateRange(ctx, u.ID,
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	require.Len(t, records, 3)
	// Ordered by date ascending regardless of insertion order.
	assert.Equal(t, "2024-04-01", records[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-04-03", records[2].Date.Format("2006-01-02"))
	// The activity belongs to April 3rd, the first record inserted.
	require.Len(t, records[2].Activities, 1)
	assert.Equal(t, "Code review", records[2].Activities[0].Description)
}

func TestRecordRepository_UpdateReplacesPunches(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	u := createTestUser(t, ctx, db, "record-update@example.com", "EMP0005")
	repo := postgresql.NewRecordRepository(db)

	date := time.Date(2024, time.April, 4, 0, 0, 0, 0, time.UTC)
	rec, err := repo.Create(ctx, record.AttendanceRecord{
		UserID:    u.ID,
		Date:      date,
		EntryTime: timeOfDay(8, 0),
		ExitTime:  timeOfDay(17, 0),
	})
	require.NoError(t, err)

	category := record.AbsenceMedicalLeave
	rec.EntryTime = nil
	rec.ExitTime = nil
	rec.WorkedHours = nil
	rec.IsAbsence = true
	rec.AbsenceCategory = &category

	require.NoError(t, repo.Update(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAbsence)
	require.NotNil(t, got.AbsenceCategory)
	assert.Equal(t, record.AbsenceMedicalLeave, *got.AbsenceCategory)
	assert.Nil(t, got.EntryTime)
	assert.Nil(t, got.WorkedHours)
}

func TestRecordRepository_DeleteCascadesActivities(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	u := createTestUser(t, ctx, db, "record-delete@example.com", "EMP0006")
	repo := postgresql.NewRecordRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	rec, err := repo.Create(ctx, record.AttendanceRecord{
		UserID: u.ID,
		Date:   time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	act, err := activityRepo.Create(ctx, record.Activity{
		RecordID:    rec.ID,
		Description: "Standup",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err = repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
	_, err = activityRepo.GetByID(ctx, act.ID)
	assert.ErrorIs(t, err, record.ErrActivityNotFound)
}

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	repo := postgresql.NewUserRepository(db)
	createTestUser(t, ctx, db, "unique@example.com", "EMP0100")

	_, err := repo.Create(ctx, user.User{
		Name:         "Second User",
		Email:        "unique@example.com",
		Registration: "EMP0101",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = repo.Create(ctx, user.User{
		Name:         "Third User",
		Email:        "other@example.com",
		Registration: "EMP0100",
	})
	assert.ErrorIs(t, err, user.ErrRegistrationExists)
}

// ===== HOLIDAY REPOSITORY TESTS =====

func TestHolidayRepository_UniqueDate(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	repo := postgresql.NewHolidayRepository(db)
	date := time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, holiday.Holiday{Date: date, Description: "Tiradentes"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, holiday.Holiday{Date: date, Description: "Duplicate"})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)
}

func TestHolidayRepository_FindByDateRange(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)

	repo := postgresql.NewHolidayRepository(db)
	_, err := repo.Create(ctx, holiday.Holiday{
		Date:        time.Date(2024, time.April, 21, 0, 0, 0, 0, time.UTC),
		Description: "Tiradentes",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, holiday.Holiday{
		Date:        time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Description: "Dia do Trabalho",
	})
	require.NoError(t, err)

	holidays, err := repo.FindByDateRange(ctx,
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "Tiradentes", holidays[0].Description)
}
