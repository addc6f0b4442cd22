package validation

import (
	"testing"

	"finsight/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateIngestRequest(t *testing.T) {
	v := GetValidator()

	valid := dto.IngestRequest{
		UserID:   uuid.New().String(),
		Bank:     "SBI",
		Filename: "statement.csv",
	}
	assert.NoError(t, v.ValidateStruct(valid))

	tests := []struct {
		name    string
		mutate  func(*dto.IngestRequest)
		message string
	}{
		{
			name:    "missing user",
			mutate:  func(r *dto.IngestRequest) { r.UserID = "" },
			message: "user_id is required",
		},
		{
			name:    "malformed uuid",
			mutate:  func(r *dto.IngestRequest) { r.UserID = "not-a-uuid" },
			message: "user_id must be a valid UUID",
		},
		{
			name:    "unsupported bank",
			mutate:  func(r *dto.IngestRequest) { r.Bank = "icici" },
			message: "bank must be one of sbi, hdfc, axis",
		},
		{
			name:    "unsupported extension",
			mutate:  func(r *dto.IngestRequest) { r.Filename = "statement.xlsx" },
			message: "filename must be a .csv, .pdf or .txt file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := v.ValidateStruct(req)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestValidateReportRequest(t *testing.T) {
	v := GetValidator()

	valid := dto.ReportRequest{
		UserID:    uuid.New().String(),
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
		Category:  "food",
	}
	assert.NoError(t, v.ValidateStruct(valid))

	// the optional fields may all be absent
	assert.NoError(t, v.ValidateStruct(dto.ReportRequest{UserID: uuid.New().String()}))

	badDate := valid
	badDate.StartDate = "01/01/2024"
	assert.ErrorContains(t, v.ValidateStruct(badDate), "start_date must be in YYYY-MM-DD format")

	badCategory := valid
	badCategory.Category = "gambling"
	assert.ErrorContains(t, v.ValidateStruct(badCategory), "category is not a valid spending category")
}

func TestValidateCreateUserRequest(t *testing.T) {
	v := GetValidator()

	valid := dto.CreateUserRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "correct horse battery",
	}
	assert.NoError(t, v.ValidateStruct(valid))

	shortName := valid
	shortName.Username = "ab"
	assert.ErrorContains(t, v.ValidateStruct(shortName), "username must be at least 3")

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.ErrorContains(t, v.ValidateStruct(badEmail), "email must be a valid email address")

	weakPassword := valid
	weakPassword.Password = "short"
	assert.ErrorContains(t, v.ValidateStruct(weakPassword), "password must be at least 8")
}

func TestValidateSeedRequest(t *testing.T) {
	v := GetValidator()

	valid := dto.SeedRequest{
		UserID:   uuid.New().String(),
		Months:   6,
		PerMonth: 40,
	}
	assert.NoError(t, v.ValidateStruct(valid))

	tooLong := valid
	tooLong.Months = 48
	assert.ErrorContains(t, v.ValidateStruct(tooLong), "months must be at most 36")
}

func TestValidateStruct_AggregatesAllFailures(t *testing.T) {
	err := GetValidator().ValidateStruct(dto.IngestRequest{})
	assert.ErrorContains(t, err, "user_id is required")
	assert.ErrorContains(t, err, "bank is required")
	assert.ErrorContains(t, err, "filename is required")
}

func TestValidateBank_NormalizesInput(t *testing.T) {
	v := GetValidator()

	req := dto.IngestRequest{
		UserID:   uuid.New().String(),
		Bank:     "  HDFC ",
		Filename: "statement.pdf",
	}
	assert.NoError(t, v.ValidateStruct(req))
}
