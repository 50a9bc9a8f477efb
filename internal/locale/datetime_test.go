package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/model"
)

func TestFormatDate(t *testing.T) {
	// 2025-12-25 15:04:05 UTC is 23:04 the same day in Kuala Lumpur.
	instant := time.Date(2025, 12, 25, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		zone    string
		pattern model.DateFormat
		want    string
	}{
		{
			name:    "slash mdy",
			zone:    "UTC",
			pattern: model.DateFormatMDY,
			want:    "12/25/2025",
		},
		{
			name:    "slash dmy",
			zone:    "UTC",
			pattern: model.DateFormatDMY,
			want:    "25/12/2025",
		},
		{
			name:    "iso",
			zone:    "UTC",
			pattern: model.DateFormatISO,
			want:    "2025-12-25",
		},
		{
			name:    "dotted dmy",
			zone:    "UTC",
			pattern: model.DateFormatDotDMY,
			want:    "25.12.2025",
		},
		{
			name:    "dashed dmy",
			zone:    "UTC",
			pattern: model.DateFormatDashDMY,
			want:    "25-12-2025",
		},
		{
			name:    "zone shift stays on same day",
			zone:    "Asia/Kuala_Lumpur",
			pattern: model.DateFormatDMY,
			want:    "25/12/2025",
		},
		{
			name:    "zone shift crosses into next day",
			zone:    "Pacific/Auckland",
			pattern: model.DateFormatISO,
			want:    "2025-12-26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(instant, tt.zone, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDate_Errors(t *testing.T) {
	instant := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

	_, err := FormatDate(instant, "Mars/Olympus", model.DateFormatISO)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConfiguration, apperrors.CodeOf(err))

	_, err = FormatDate(instant, "UTC", model.DateFormat("YYYY/MM/DD"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConfiguration, apperrors.CodeOf(err))
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		zone    string
		cycle   model.TimeFormat
		want    string
	}{
		{
			name:    "afternoon 12 hour",
			instant: time.Date(2025, 6, 15, 15, 4, 0, 0, time.UTC),
			zone:    "UTC",
			cycle:   model.TimeFormat12Hour,
			want:    "3:04 PM",
		},
		{
			name:    "afternoon 24 hour",
			instant: time.Date(2025, 6, 15, 15, 4, 0, 0, time.UTC),
			zone:    "UTC",
			cycle:   model.TimeFormat24Hour,
			want:    "15:04",
		},
		{
			name:    "noon is 12 PM",
			instant: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			zone:    "UTC",
			cycle:   model.TimeFormat12Hour,
			want:    "12:00 PM",
		},
		{
			name:    "midnight is 12 AM",
			instant: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			zone:    "UTC",
			cycle:   model.TimeFormat12Hour,
			want:    "12:00 AM",
		},
		{
			name:    "midnight 24 hour",
			instant: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			zone:    "UTC",
			cycle:   model.TimeFormat24Hour,
			want:    "00:00",
		},
		{
			name:    "single digit hour not padded in 12 hour",
			instant: time.Date(2025, 6, 15, 9, 5, 0, 0, time.UTC),
			zone:    "UTC",
			cycle:   model.TimeFormat12Hour,
			want:    "9:05 AM",
		},
		{
			name:    "new york summer offset",
			instant: time.Date(2025, 7, 4, 16, 0, 0, 0, time.UTC),
			zone:    "America/New_York",
			cycle:   model.TimeFormat12Hour,
			want:    "12:00 PM",
		},
		{
			name:    "new york winter offset",
			instant: time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC),
			zone:    "America/New_York",
			cycle:   model.TimeFormat24Hour,
			want:    "12:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTime(tt.instant, tt.zone, tt.cycle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	instant := time.Date(2025, 12, 25, 15, 4, 5, 0, time.UTC)

	got, err := FormatDateTime(instant, "UTC", model.DateFormatDMY, model.TimeFormat12Hour)
	require.NoError(t, err)
	assert.Equal(t, "25/12/2025 3:04 PM", got)

	got, err = FormatDateTime(instant, "Asia/Kuala_Lumpur", model.DateFormatISO, model.TimeFormat24Hour)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25 23:04", got)
}

func TestFormatShortDate(t *testing.T) {
	instant := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

	got, err := FormatShortDate(instant, "UTC")
	require.NoError(t, err)
	assert.Equal(t, "Dec 25, 2025", got)

	// Single digit day has no padding.
	got, err = FormatShortDate(time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), "UTC")
	require.NoError(t, err)
	assert.Equal(t, "Mar 5, 2025", got)
}

func TestFormatRelativeDate(t *testing.T) {
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		instant time.Time
		zone    string
		want    string
	}{
		{
			name:    "same day is today",
			instant: time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC),
			zone:    "UTC",
			want:    "Today",
		},
		{
			name:    "previous day is yesterday",
			instant: time.Date(2025, 12, 24, 0, 1, 0, 0, time.UTC),
			zone:    "UTC",
			want:    "Yesterday",
		},
		{
			name:    "older dates use the configured pattern",
			instant: time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC),
			zone:    "UTC",
			want:    "20/12/2025",
		},
		{
			name:    "tomorrow is not relative",
			instant: time.Date(2025, 12, 26, 12, 0, 0, 0, time.UTC),
			zone:    "UTC",
			want:    "26/12/2025",
		},
		{
			// 23 Dec 20:00 UTC is already 24 Dec 04:00 in Kuala Lumpur,
			// one day before the reference instant there.
			name:    "day boundary follows the tenant zone",
			instant: time.Date(2025, 12, 23, 20, 0, 0, 0, time.UTC),
			zone:    "Asia/Kuala_Lumpur",
			want:    "Yesterday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatRelativeDate(tt.instant, now, tt.zone, model.DateFormatDMY)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadZone(t *testing.T) {
	loc, err := LoadZone("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	_, err = LoadZone("Not/AZone")
	assert.Error(t, err)
}
