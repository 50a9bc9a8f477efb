package model

import (
	"time"
)

// DateFormat is a display pattern for calendar dates. Only the listed
// patterns are accepted by the settings form.
type DateFormat string

const (
	DateFormatMDY     DateFormat = "MM/DD/YYYY"
	DateFormatDMY     DateFormat = "DD/MM/YYYY"
	DateFormatISO     DateFormat = "YYYY-MM-DD"
	DateFormatDotDMY  DateFormat = "DD.MM.YYYY"
	DateFormatDashDMY DateFormat = "DD-MM-YYYY"
)

// DateFormats lists every accepted date pattern.
var DateFormats = []DateFormat{
	DateFormatMDY,
	DateFormatDMY,
	DateFormatISO,
	DateFormatDotDMY,
	DateFormatDashDMY,
}

// Valid reports whether f is one of the accepted patterns.
func (f DateFormat) Valid() bool {
	for _, known := range DateFormats {
		if f == known {
			return true
		}
	}
	return false
}

// TimeFormat selects the hour cycle for time display.
type TimeFormat string

const (
	TimeFormat12Hour TimeFormat = "12-hour"
	TimeFormat24Hour TimeFormat = "24-hour"
)

// Valid reports whether f is a known hour cycle.
func (f TimeFormat) Valid() bool {
	return f == TimeFormat12Hour || f == TimeFormat24Hour
}

// DecimalPrecision is the smallest currency increment to display, expressed
// as the increment itself ("1", "0.1", "0.01", "0.001"). It controls the
// fractional digit count of currency and number output.
type DecimalPrecision string

const (
	PrecisionWhole      DecimalPrecision = "1"
	PrecisionTenth      DecimalPrecision = "0.1"
	PrecisionHundredth  DecimalPrecision = "0.01"
	PrecisionThousandth DecimalPrecision = "0.001"
)

// Valid reports whether p is one of the accepted increments.
func (p DecimalPrecision) Valid() bool {
	switch p {
	case PrecisionWhole, PrecisionTenth, PrecisionHundredth, PrecisionThousandth:
		return true
	}
	return false
}

// Digits returns the fractional digit count implied by the increment.
// Unknown values fall back to two digits, the most common minor unit.
func (p DecimalPrecision) Digits() int {
	switch p {
	case PrecisionWhole:
		return 0
	case PrecisionTenth:
		return 1
	case PrecisionHundredth:
		return 2
	case PrecisionThousandth:
		return 3
	default:
		return 2
	}
}

// TenantSettings is one tenant's locale configuration. Exactly one record
// exists per tenant; it is replaced as a whole on every settings save and
// never deleted.
type TenantSettings struct {
	TenantID         string
	CompanyName      string
	Country          string
	Currency         string
	Timezone         string
	DateFormat       DateFormat
	TimeFormat       TimeFormat
	DecimalPrecision DecimalPrecision
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int64 // For optimistic locking
}

// Clone returns a deep copy of the settings record.
func (s *TenantSettings) Clone() *TenantSettings {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

// SameLocale reports whether the two records agree on every field that
// affects formatting output. Version and timestamps are ignored, so a
// replayed save of an identical candidate is a no-op.
func (s *TenantSettings) SameLocale(o *TenantSettings) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Country == o.Country &&
		s.Currency == o.Currency &&
		s.Timezone == o.Timezone &&
		s.DateFormat == o.DateFormat &&
		s.TimeFormat == o.TimeFormat &&
		s.DecimalPrecision == o.DecimalPrecision &&
		s.CompanyName == o.CompanyName
}

// DefaultSettings returns the baseline locale a tenant starts with before
// any preset or explicit configuration is applied.
func DefaultSettings(tenantID string) *TenantSettings {
	now := time.Now().UTC()
	return &TenantSettings{
		TenantID:         tenantID,
		Country:          "MY",
		Currency:         "MYR",
		Timezone:         "Asia/Kuala_Lumpur",
		DateFormat:       DateFormatDMY,
		TimeFormat:       TimeFormat12Hour,
		DecimalPrecision: PrecisionHundredth,
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          1,
	}
}
