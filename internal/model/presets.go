package model

import "sort"

// presets bundles the named country defaults offered by the settings form
// and used to seed new tenants at onboarding. The engine does not force any
// coupling between these fields; a tenant may override each axis
// independently after onboarding.
var presets = map[string]TenantSettings{
	"US": {
		Country:          "US",
		Currency:         "USD",
		Timezone:         "America/New_York",
		DateFormat:       DateFormatMDY,
		TimeFormat:       TimeFormat12Hour,
		DecimalPrecision: PrecisionHundredth,
	},
	"MY": {
		Country:          "MY",
		Currency:         "MYR",
		Timezone:         "Asia/Kuala_Lumpur",
		DateFormat:       DateFormatDMY,
		TimeFormat:       TimeFormat12Hour,
		DecimalPrecision: PrecisionHundredth,
	},
	"JP": {
		Country:          "JP",
		Currency:         "JPY",
		Timezone:         "Asia/Tokyo",
		DateFormat:       DateFormatISO,
		TimeFormat:       TimeFormat24Hour,
		DecimalPrecision: PrecisionWhole,
	},
	"DE": {
		Country:          "DE",
		Currency:         "EUR",
		Timezone:         "Europe/Berlin",
		DateFormat:       DateFormatDotDMY,
		TimeFormat:       TimeFormat24Hour,
		DecimalPrecision: PrecisionHundredth,
	},
	"GB": {
		Country:          "GB",
		Currency:         "GBP",
		Timezone:         "Europe/London",
		DateFormat:       DateFormatDMY,
		TimeFormat:       TimeFormat24Hour,
		DecimalPrecision: PrecisionHundredth,
	},
	"SG": {
		Country:          "SG",
		Currency:         "SGD",
		Timezone:         "Asia/Singapore",
		DateFormat:       DateFormatDMY,
		TimeFormat:       TimeFormat12Hour,
		DecimalPrecision: PrecisionHundredth,
	},
}

// PresetFor returns the bundled defaults for a country code. The second
// return value is false when no preset exists for the country.
func PresetFor(country string) (TenantSettings, bool) {
	preset, ok := presets[country]
	return preset, ok
}

// PresetCountries lists the countries that ship with bundled defaults.
func PresetCountries() []string {
	out := make([]string, 0, len(presets))
	for country := range presets {
		out = append(out, country)
	}
	sort.Strings(out)
	return out
}
