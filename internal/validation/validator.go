package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/locale"
	"github.com/shelfline/locale-service/internal/model"
)

const (
	// Size limits
	MaxTenantIDSize    = 256
	MaxCompanyNameSize = 200
)

// validCountries is the set of countries the product is sold in. The
// country field gates nothing in the engine itself; it exists so the
// settings form can warn before region-dependent domain data is reshaped.
var validCountries = map[string]struct{}{
	"US": {}, "GB": {}, "SG": {}, "MY": {}, "AU": {},
	"CA": {}, "DE": {}, "FR": {}, "JP": {}, "CN": {},
}

// Validator validates candidate tenant settings as a unit: a candidate
// either passes every field check or is rejected with a per-field error map
// before any persistence is attempted.
type Validator struct {
	maxTenantIDSize    int
	maxCompanyNameSize int
}

// NewValidator creates a new validator with default limits
func NewValidator() *Validator {
	return &Validator{
		maxTenantIDSize:    MaxTenantIDSize,
		maxCompanyNameSize: MaxCompanyNameSize,
	}
}

// Validate checks every field of the candidate. The returned error is a
// validation error carrying a field-to-reason map, or nil when the candidate
// is acceptable.
func (v *Validator) Validate(candidate *model.TenantSettings) error {
	if candidate == nil {
		return apperrors.Validation(map[string]string{"settings": "settings record is required"})
	}

	fieldErrors := make(map[string]string)

	if reason := v.checkTenantID(candidate.TenantID); reason != "" {
		fieldErrors["tenant_id"] = reason
	}
	if reason := v.checkCompanyName(candidate.CompanyName); reason != "" {
		fieldErrors["company_name"] = reason
	}
	if reason := checkCountry(candidate.Country); reason != "" {
		fieldErrors["country"] = reason
	}
	if reason := checkCurrency(candidate.Currency); reason != "" {
		fieldErrors["currency"] = reason
	}
	if reason := checkTimezone(candidate.Timezone); reason != "" {
		fieldErrors["timezone"] = reason
	}
	if !candidate.DateFormat.Valid() {
		fieldErrors["date_format"] = fmt.Sprintf("invalid date format %q; must be one of: %s",
			candidate.DateFormat, joinDateFormats())
	}
	if !candidate.TimeFormat.Valid() {
		fieldErrors["time_format"] = "invalid time format; must be 12-hour or 24-hour"
	}
	if !candidate.DecimalPrecision.Valid() {
		fieldErrors["decimal_precision"] = "invalid decimal precision; must be one of: 1, 0.1, 0.01, 0.001"
	}

	if len(fieldErrors) > 0 {
		return apperrors.Validation(fieldErrors)
	}
	return nil
}

func (v *Validator) checkTenantID(tenantID string) string {
	if tenantID == "" {
		return "tenant ID cannot be empty"
	}
	if len(tenantID) > v.maxTenantIDSize {
		return fmt.Sprintf("tenant ID exceeds maximum size of %d bytes", v.maxTenantIDSize)
	}
	for _, r := range tenantID {
		if unicode.IsControl(r) {
			return "tenant ID cannot contain control characters"
		}
	}
	return ""
}

func (v *Validator) checkCompanyName(name string) string {
	// Optional; the settings form requires it but provisioning defaults may
	// leave it blank until the administrator fills it in.
	if name == "" {
		return ""
	}
	if strings.TrimSpace(name) == "" {
		return "company name cannot be blank"
	}
	if len(name) > v.maxCompanyNameSize {
		return fmt.Sprintf("company name exceeds maximum size of %d bytes", v.maxCompanyNameSize)
	}
	return ""
}

func checkCountry(country string) string {
	if country == "" {
		return "country is required"
	}
	if _, ok := validCountries[country]; !ok {
		return fmt.Sprintf("invalid country code %q", country)
	}
	return ""
}

func checkCurrency(code string) string {
	if code == "" {
		return "currency is required"
	}
	if !locale.SupportedCurrency(code) {
		return fmt.Sprintf("unsupported currency %q", code)
	}
	return ""
}

func checkTimezone(zone string) string {
	if zone == "" {
		return "timezone is required"
	}
	if _, err := time.LoadLocation(zone); err != nil {
		return fmt.Sprintf("invalid timezone %q", zone)
	}
	return ""
}

func joinDateFormats() string {
	out := make([]string, len(model.DateFormats))
	for i, f := range model.DateFormats {
		out[i] = string(f)
	}
	return strings.Join(out, ", ")
}
