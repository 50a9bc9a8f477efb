package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/model"
)

func validSettings() *model.TenantSettings {
	s := model.DefaultSettings("tenant-1")
	s.CompanyName = "Acme Traders"
	return s
}

func fieldErrorsOf(t *testing.T, err error) map[string]interface{} {
	t.Helper()
	var le *apperrors.LocaleError
	require.ErrorAs(t, err, &le)
	require.Equal(t, apperrors.ErrCodeValidation, le.Code)
	return le.Details
}

func TestValidator_Validate_Accepts(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(validSettings()))

	// Company name is optional.
	s := validSettings()
	s.CompanyName = ""
	assert.NoError(t, v.Validate(s))

	// Every preset passes as-is.
	for _, country := range model.PresetCountries() {
		preset, ok := model.PresetFor(country)
		require.True(t, ok)
		preset.TenantID = "tenant-1"
		assert.NoError(t, v.Validate(&preset), "preset %s", country)
	}
}

func TestValidator_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.TenantSettings)
		wantField string
	}{
		{
			name:      "empty tenant id",
			mutate:    func(s *model.TenantSettings) { s.TenantID = "" },
			wantField: "tenant_id",
		},
		{
			name:      "oversized tenant id",
			mutate:    func(s *model.TenantSettings) { s.TenantID = strings.Repeat("x", MaxTenantIDSize+1) },
			wantField: "tenant_id",
		},
		{
			name:      "control characters in tenant id",
			mutate:    func(s *model.TenantSettings) { s.TenantID = "tenant\x00one" },
			wantField: "tenant_id",
		},
		{
			name:      "whitespace only company name",
			mutate:    func(s *model.TenantSettings) { s.CompanyName = "   " },
			wantField: "company_name",
		},
		{
			name:      "oversized company name",
			mutate:    func(s *model.TenantSettings) { s.CompanyName = strings.Repeat("a", MaxCompanyNameSize+1) },
			wantField: "company_name",
		},
		{
			name:      "empty country",
			mutate:    func(s *model.TenantSettings) { s.Country = "" },
			wantField: "country",
		},
		{
			name:      "unknown country",
			mutate:    func(s *model.TenantSettings) { s.Country = "ZZ" },
			wantField: "country",
		},
		{
			name:      "empty currency",
			mutate:    func(s *model.TenantSettings) { s.Currency = "" },
			wantField: "currency",
		},
		{
			name:      "unsupported currency",
			mutate:    func(s *model.TenantSettings) { s.Currency = "XYZ" },
			wantField: "currency",
		},
		{
			name:      "lowercase currency",
			mutate:    func(s *model.TenantSettings) { s.Currency = "usd" },
			wantField: "currency",
		},
		{
			name:      "empty timezone",
			mutate:    func(s *model.TenantSettings) { s.Timezone = "" },
			wantField: "timezone",
		},
		{
			name:      "unknown timezone",
			mutate:    func(s *model.TenantSettings) { s.Timezone = "Mars/Olympus" },
			wantField: "timezone",
		},
		{
			name:      "unknown date format",
			mutate:    func(s *model.TenantSettings) { s.DateFormat = "YYYY/MM/DD" },
			wantField: "date_format",
		},
		{
			name:      "unknown time format",
			mutate:    func(s *model.TenantSettings) { s.TimeFormat = "am-pm" },
			wantField: "time_format",
		},
		{
			name:      "unknown decimal precision",
			mutate:    func(s *model.TenantSettings) { s.DecimalPrecision = "0.05" },
			wantField: "decimal_precision",
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)

			err := v.Validate(s)
			require.Error(t, err)
			details := fieldErrorsOf(t, err)
			assert.Contains(t, details, tt.wantField)
		})
	}
}

func TestValidator_Validate_CollectsAllFieldErrors(t *testing.T) {
	v := NewValidator()

	s := validSettings()
	s.Country = "ZZ"
	s.Currency = "XYZ"
	s.Timezone = "Nowhere"

	err := v.Validate(s)
	require.Error(t, err)
	details := fieldErrorsOf(t, err)
	assert.Len(t, details, 3)
	assert.Contains(t, details, "country")
	assert.Contains(t, details, "currency")
	assert.Contains(t, details, "timezone")
}

func TestValidator_Validate_NilCandidate(t *testing.T) {
	v := NewValidator()

	err := v.Validate(nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
}
