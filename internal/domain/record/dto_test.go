package record

import (
	"errors"
	"testing"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.ToMap()
}

func TestCreateRecordRequest_Validate(t *testing.T) {
	req := CreateRecordRequest{
		Date: "2024-04-01",
		PunchFields: PunchFields{
			EntryTime: strPtr("08:00"),
			ExitTime:  strPtr("17:00"),
		},
	}

	assert.NoError(t, req.Validate())
}

func TestCreateRecordRequest_Validate_MissingDate(t *testing.T) {
	req := CreateRecordRequest{}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "date")
}

func TestCreateRecordRequest_Validate_BadPunchFormat(t *testing.T) {
	req := CreateRecordRequest{
		Date: "2024-04-01",
		PunchFields: PunchFields{
			EntryTime: strPtr("8am"),
		},
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "entry_time")
}

func TestCreateRecordRequest_Validate_AbsenceWithPunches(t *testing.T) {
	req := CreateRecordRequest{
		Date:            "2024-04-01",
		IsAbsence:       true,
		AbsenceCategory: strPtr("vacation"),
		PunchFields: PunchFields{
			EntryTime: strPtr("08:00"),
		},
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "is_absence")
}

func TestCreateRecordRequest_Validate_AbsenceRequiresCategory(t *testing.T) {
	req := CreateRecordRequest{
		Date:      "2024-04-01",
		IsAbsence: true,
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "absence_category")
}

func TestCreateRecordRequest_Validate_UnknownCategory(t *testing.T) {
	req := CreateRecordRequest{
		Date:            "2024-04-01",
		IsAbsence:       true,
		AbsenceCategory: strPtr("sabbatical"),
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "absence_category")
}

func TestCreateRecordRequest_Validate_CategoryWithoutAbsence(t *testing.T) {
	req := CreateRecordRequest{
		Date:            "2024-04-01",
		AbsenceCategory: strPtr("vacation"),
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "absence_category")
}

func TestPunchFields_ParsedPunches(t *testing.T) {
	p := PunchFields{
		EntryTime: strPtr("08:30"),
		ExitTime:  strPtr("17:45:30"),
	}

	entry, lunchOut, lunchIn, exit := p.ParsedPunches()

	require.NotNil(t, entry)
	assert.Equal(t, "08:30", entry.Format("15:04"))
	assert.Nil(t, lunchOut)
	assert.Nil(t, lunchIn)
	require.NotNil(t, exit)
	assert.Equal(t, "17:45", exit.Format("15:04"))
}

func TestUpdateRecordRequest_Validate_InvalidID(t *testing.T) {
	req := UpdateRecordRequest{ID: "not-a-uuid"}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "id")
}
