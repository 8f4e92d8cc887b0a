package utils

import (
	"testing"
	"time"

	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUserData(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "carla", "Sup3r@secret", false},
		{"username too short", "ca", "Sup3r@secret", true},
		{"blank password", "carla", "", true},
		{"password too short", "carla", "Ab1@xyz", true},
		{"password missing uppercase", "carla", "sup3r@secret", true},
		{"password missing digit", "carla", "Super@secret", true},
		{"password missing special", "carla", "Sup3rsecret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserData(models.User{Username: tt.username, Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateProcedureData(t *testing.T) {
	valid := models.Procedure{
		DoctorID:      5,
		PatientID:     3,
		Date:          time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Value:         120.50,
		PaymentStatus: models.PaymentStatusPaid,
	}
	require.NoError(t, ValidateProcedureData(valid))

	t.Run("missing doctor", func(t *testing.T) {
		p := valid
		p.DoctorID = 0
		assert.Error(t, ValidateProcedureData(p))
	})

	t.Run("missing patient", func(t *testing.T) {
		p := valid
		p.PatientID = 0
		assert.Error(t, ValidateProcedureData(p))
	})

	t.Run("missing date", func(t *testing.T) {
		p := valid
		p.Date = time.Time{}
		assert.Error(t, ValidateProcedureData(p))
	})

	t.Run("unknown payment status", func(t *testing.T) {
		p := valid
		p.PaymentStatus = "refunded"
		assert.Error(t, ValidateProcedureData(p))
	})
}

func TestValidateReportPeriod(t *testing.T) {
	assert.NoError(t, ValidateReportPeriod("2026-01-01", "2026-01-31"))
	assert.NoError(t, ValidateReportPeriod("", ""))
	assert.Error(t, ValidateReportPeriod("01/01/2026", "2026-01-31"))
	assert.Error(t, ValidateReportPeriod("2026-01-01", "not-a-date"))
}
