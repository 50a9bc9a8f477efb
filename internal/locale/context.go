package locale

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/model"
	"github.com/shelfline/locale-service/internal/store"
)

// Validator checks a candidate settings record as a unit before it is
// persisted. Implemented by internal/validation.
type Validator interface {
	Validate(candidate *model.TenantSettings) error
}

// snapshot is one fully-resolved settings generation. It is immutable after
// construction; readers see either this generation or the next, never a mix.
type snapshot struct {
	settings model.TenantSettings
	loc      *time.Location
	symbol   string
	digits   int
}

// ApplyResult reports the outcome of a successful settings change.
type ApplyResult struct {
	// CountryChanged signals that the candidate moved the tenant to a
	// different country than the persisted record. The caller decides
	// whether that warrants a confirmation prompt; the engine only reports
	// the condition.
	CountryChanged bool
	Settings       *model.TenantSettings
}

// FormattingContext is the live handle every page reads. It holds the
// currently active settings snapshot for one tenant and renders numbers,
// currency amounts, and instants against it. Reads are lock-free; the only
// mutation path is Apply.
type FormattingContext struct {
	tenantID  string
	store     store.SettingsStore
	validator Validator
	logger    *zap.Logger

	mu   sync.Mutex // serializes Apply; last write wins
	snap atomic.Pointer[snapshot]
}

// NewFormattingContext creates a context in the uninitialized state. Every
// formatting call fails with a not-ready error until Load or Bootstrap
// installs a snapshot.
func NewFormattingContext(tenantID string, settingsStore store.SettingsStore, validator Validator, logger *zap.Logger) *FormattingContext {
	return &FormattingContext{
		tenantID:  tenantID,
		store:     settingsStore,
		validator: validator,
		logger:    logger,
	}
}

// Load fetches the tenant's persisted settings and installs them as the
// active snapshot.
func (c *FormattingContext) Load(ctx context.Context) error {
	settings, err := c.store.Load(ctx, c.tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.TenantNotFound(c.tenantID)
		}
		return apperrors.Persistence("failed to load tenant settings", err).
			WithDetail("tenant_id", c.tenantID)
	}
	return c.Bootstrap(settings)
}

// Bootstrap installs an already-loaded settings record as the active
// snapshot without touching the store.
func (c *FormattingContext) Bootstrap(settings *model.TenantSettings) error {
	next, err := buildSnapshot(settings)
	if err != nil {
		return err
	}
	c.snap.Store(next)
	return nil
}

// Apply is the single mutation entry point. The candidate is validated as a
// unit, persisted as a full replacement, and only then swapped in atomically:
// a formatting call racing with Apply observes either the fully-old or the
// fully-new settings. On persistence failure the active snapshot is left
// untouched and the identical call may be retried.
func (c *FormattingContext) Apply(ctx context.Context, candidate *model.TenantSettings) (*ApplyResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.snap.Load()
	if current == nil {
		return nil, apperrors.NotReady(c.tenantID)
	}

	cand := candidate.Clone()
	cand.TenantID = c.tenantID
	if cand.CompanyName == "" {
		cand.CompanyName = current.settings.CompanyName
	}

	if err := c.validator.Validate(cand); err != nil {
		return nil, err
	}

	countryChanged := cand.Country != current.settings.Country

	// Replaying a candidate identical to the active settings is a no-op;
	// the persisted record already matches.
	if cand.SameLocale(&current.settings) {
		return &ApplyResult{CountryChanged: false, Settings: current.settings.Clone()}, nil
	}

	cand.CreatedAt = current.settings.CreatedAt
	cand.UpdatedAt = time.Now().UTC()
	cand.Version = current.settings.Version + 1

	next, err := buildSnapshot(cand)
	if err != nil {
		// Validation vouched for the candidate, so this is unreachable
		// short of a rules/validator mismatch.
		return nil, err
	}

	if err := c.store.Save(ctx, cand); err != nil {
		return nil, apperrors.Persistence("failed to persist tenant settings", err).
			WithDetail("tenant_id", c.tenantID)
	}

	c.snap.Store(next)

	c.logger.Info("Applied tenant settings",
		zap.String("tenant_id", c.tenantID),
		zap.String("country", cand.Country),
		zap.String("currency", cand.Currency),
		zap.String("timezone", cand.Timezone),
		zap.Bool("country_changed", countryChanged))

	return &ApplyResult{CountryChanged: countryChanged, Settings: cand.Clone()}, nil
}

// buildSnapshot resolves the derived formatter state for a settings record.
func buildSnapshot(settings *model.TenantSettings) (*snapshot, error) {
	loc, err := LoadZone(settings.Timezone)
	if err != nil {
		return nil, err
	}
	symbol, err := Symbol(settings.Currency)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		settings: *settings.Clone(),
		loc:      loc,
		symbol:   symbol,
		digits:   settings.DecimalPrecision.Digits(),
	}, nil
}

// active returns the current snapshot or a not-ready error when no settings
// have been loaded yet.
func (c *FormattingContext) active() (*snapshot, error) {
	s := c.snap.Load()
	if s == nil {
		return nil, apperrors.NotReady(c.tenantID)
	}
	return s, nil
}

// Ready reports whether a snapshot has been installed.
func (c *FormattingContext) Ready() bool {
	return c.snap.Load() != nil
}

// Settings returns a copy of the currently active settings record.
func (c *FormattingContext) Settings() (*model.TenantSettings, error) {
	s, err := c.active()
	if err != nil {
		return nil, err
	}
	return s.settings.Clone(), nil
}

// CurrencySymbol returns the display prefix of the active currency.
func (c *FormattingContext) CurrencySymbol() (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return s.symbol, nil
}

// FormatCurrency renders a monetary amount in the active currency.
func (c *FormattingContext) FormatCurrency(amount float64) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return s.symbol + NBSP + FormatNumber(amount, s.digits), nil
}

// FormatCurrencyIn renders a monetary amount in an explicit currency while
// keeping the tenant's configured precision.
func (c *FormattingContext) FormatCurrencyIn(amount float64, code string) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return FormatCurrency(amount, code, s.digits)
}

// FormatNumber renders a plain numeric value at the configured precision.
func (c *FormattingContext) FormatNumber(value float64) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return FormatNumber(value, s.digits), nil
}

// FormatDate renders an instant as a tenant-local calendar date.
func (c *FormattingContext) FormatDate(t time.Time) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return formatDateIn(t, s.loc, s.settings.DateFormat)
}

// FormatTime renders an instant as a tenant-local wall-clock time.
func (c *FormattingContext) FormatTime(t time.Time) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return formatTimeIn(t, s.loc, s.settings.TimeFormat), nil
}

// FormatDateTime renders an instant as date and time joined by a space.
func (c *FormattingContext) FormatDateTime(t time.Time) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	date, err := formatDateIn(t, s.loc, s.settings.DateFormat)
	if err != nil {
		return "", err
	}
	return date + " " + formatTimeIn(t, s.loc, s.settings.TimeFormat), nil
}

// FormatShortDate renders an instant as an abbreviated date, e.g.
// "Dec 25, 2025".
func (c *FormattingContext) FormatShortDate(t time.Time) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}
	return t.In(s.loc).Format(layoutShortDate), nil
}

// FormatRelativeDate renders "Today", "Yesterday", or the full date.
func (c *FormattingContext) FormatRelativeDate(t, now time.Time) (string, error) {
	s, err := c.active()
	if err != nil {
		return "", err
	}

	day := t.In(s.loc)
	ref := now.In(s.loc)
	if sameDay(day, ref) {
		return "Today", nil
	}
	if sameDay(day, ref.AddDate(0, 0, -1)) {
		return "Yesterday", nil
	}
	return formatDateIn(t, s.loc, s.settings.DateFormat)
}
