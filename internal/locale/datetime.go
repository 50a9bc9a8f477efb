package locale

import (
	"time"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/model"
)

// dateLayouts maps the settings-form patterns to Go reference layouts.
var dateLayouts = map[model.DateFormat]string{
	model.DateFormatMDY:     "01/02/2006",
	model.DateFormatDMY:     "02/01/2006",
	model.DateFormatISO:     "2006-01-02",
	model.DateFormatDotDMY:  "02.01.2006",
	model.DateFormatDashDMY: "02-01-2006",
}

const (
	layout12Hour    = "3:04 PM"
	layout24Hour    = "15:04"
	layoutShortDate = "Jan 2, 2006"
)

// LoadZone resolves an IANA timezone identifier. An unresolvable zone is a
// configuration bug in the settings record.
func LoadZone(zone string) (*time.Location, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, apperrors.UnknownTimezone(zone, err)
	}
	return loc, nil
}

// FormatDate converts an instant to wall-clock time in zone and renders the
// calendar date per pattern.
func FormatDate(t time.Time, zone string, pattern model.DateFormat) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return formatDateIn(t, loc, pattern)
}

func formatDateIn(t time.Time, loc *time.Location, pattern model.DateFormat) (string, error) {
	layout, ok := dateLayouts[pattern]
	if !ok {
		return "", apperrors.UnknownDateFormat(string(pattern))
	}
	return t.In(loc).Format(layout), nil
}

// FormatTime converts an instant to wall-clock time in zone and renders it
// per the hour cycle: "h:mm AM/PM" (hour not zero-padded, noon 12:00 PM and
// midnight 12:00 AM) or "HH:mm" (00-23).
func FormatTime(t time.Time, zone string, hourCycle model.TimeFormat) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return formatTimeIn(t, loc, hourCycle), nil
}

func formatTimeIn(t time.Time, loc *time.Location, hourCycle model.TimeFormat) string {
	if hourCycle == model.TimeFormat24Hour {
		return t.In(loc).Format(layout24Hour)
	}
	return t.In(loc).Format(layout12Hour)
}

// FormatDateTime renders the date and time joined by a single space.
func FormatDateTime(t time.Time, zone string, pattern model.DateFormat, hourCycle model.TimeFormat) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	date, err := formatDateIn(t, loc, pattern)
	if err != nil {
		return "", err
	}
	return date + " " + formatTimeIn(t, loc, hourCycle), nil
}

// FormatShortDate renders an abbreviated date, e.g. "Dec 25, 2025".
func FormatShortDate(t time.Time, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(layoutShortDate), nil
}

// FormatRelativeDate renders "Today" or "Yesterday" when the instant falls
// on the current or previous wall-clock day in zone, and the full date per
// pattern otherwise. now is injected so callers and tests control the clock.
func FormatRelativeDate(t, now time.Time, zone string, pattern model.DateFormat) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}

	day := t.In(loc)
	ref := now.In(loc)

	if sameDay(day, ref) {
		return "Today", nil
	}
	if sameDay(day, ref.AddDate(0, 0, -1)) {
		return "Yesterday", nil
	}
	return formatDateIn(t, loc, pattern)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
