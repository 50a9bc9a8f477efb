package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/shelfline/locale-service/internal/errors"
	"github.com/shelfline/locale-service/internal/locale"
	"github.com/shelfline/locale-service/internal/metrics"
	"github.com/shelfline/locale-service/internal/model"
	"github.com/shelfline/locale-service/internal/store"
)

// SettingsService owns every tenant's FormattingContext for the lifetime of
// the process. Each context is built once from the persisted settings record
// and swapped in place on a successful settings change, so all readers of a
// tenant share one snapshot rather than caching private copies.
type SettingsService struct {
	settingsStore store.SettingsStore
	cache         *store.SettingsCache
	validator     locale.Validator
	metrics       *metrics.Metrics
	logger        *zap.Logger

	mu       sync.Mutex
	contexts map[string]*locale.FormattingContext
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsStore store.SettingsStore,
	cache *store.SettingsCache,
	validator locale.Validator,
	m *metrics.Metrics,
	logger *zap.Logger,
) *SettingsService {
	return &SettingsService{
		settingsStore: settingsStore,
		cache:         cache,
		validator:     validator,
		metrics:       m,
		logger:        logger,
		contexts:      make(map[string]*locale.FormattingContext),
	}
}

// Context returns the tenant's live formatting context, loading the
// persisted settings on first use. The cache bounds store traffic when a
// context has to be rebuilt, e.g. after a restart.
func (s *SettingsService) Context(ctx context.Context, tenantID string) (*locale.FormattingContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fc, ok := s.contexts[tenantID]; ok {
		return fc, nil
	}

	settings, err := s.loadSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	fc := locale.NewFormattingContext(tenantID, s.settingsStore, s.validator, s.logger)
	if err := fc.Bootstrap(settings); err != nil {
		return nil, err
	}

	s.contexts[tenantID] = fc
	s.metrics.ActiveContexts.Set(float64(len(s.contexts)))

	s.logger.Debug("Built formatting context",
		zap.String("tenant_id", tenantID),
		zap.String("currency", settings.Currency),
		zap.String("timezone", settings.Timezone))

	return fc, nil
}

// loadSettings fetches a tenant's settings, using cache if available.
// Callers hold s.mu.
func (s *SettingsService) loadSettings(ctx context.Context, tenantID string) (*model.TenantSettings, error) {
	if cached, ok := s.cache.Get(tenantID); ok {
		s.metrics.CacheHits.Inc()
		return cached, nil
	}
	s.metrics.CacheMisses.Inc()

	settings, err := s.settingsStore.Load(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.TenantNotFound(tenantID)
		}
		return nil, apperrors.Persistence("failed to load tenant settings", err).
			WithDetail("tenant_id", tenantID)
	}

	s.metrics.SettingsLoadsTotal.Inc()
	s.cache.Set(tenantID, settings)
	return settings, nil
}

// GetSettings returns the tenant's currently active settings record.
func (s *SettingsService) GetSettings(ctx context.Context, tenantID string) (*model.TenantSettings, error) {
	fc, err := s.Context(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return fc.Settings()
}

// ApplySettings validates and persists a full settings replacement, then
// atomically swaps the tenant's active snapshot. Concurrent calls for one
// tenant serialize; the persisted record reflects whichever save lands last.
func (s *SettingsService) ApplySettings(ctx context.Context, tenantID string, candidate *model.TenantSettings) (*locale.ApplyResult, error) {
	fc, err := s.Context(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result, err := fc.Apply(ctx, candidate)
	if err != nil {
		outcome := "error"
		switch apperrors.CodeOf(err) {
		case apperrors.ErrCodeValidation:
			outcome = "rejected"
			s.metrics.ValidationFailures.Inc()
		case apperrors.ErrCodePersistence:
			outcome = "persistence_failed"
		}
		s.metrics.SettingsUpdatesTotal.WithLabelValues(outcome).Inc()
		return nil, err
	}

	s.metrics.SettingsUpdatesTotal.WithLabelValues("applied").Inc()
	if result.CountryChanged {
		s.metrics.CountryChangesTotal.Inc()
	}
	s.cache.Set(tenantID, result.Settings)

	return result, nil
}

// ProvisionTenant creates the initial settings record for a tenant at
// onboarding, seeded from the country's preset when one exists and the
// baseline default otherwise.
func (s *SettingsService) ProvisionTenant(ctx context.Context, tenantID, companyName, country string) (*model.TenantSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.settingsStore.Load(ctx, tenantID)
	if err == nil {
		return nil, apperrors.TenantExists(tenantID)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.Persistence("failed to check tenant settings", err).
			WithDetail("tenant_id", tenantID)
	}

	settings := s.RecommendedDefaults(country)
	settings.TenantID = tenantID
	settings.CompanyName = companyName
	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now
	settings.Version = 1

	if err := s.validator.Validate(settings); err != nil {
		return nil, err
	}

	if err := s.settingsStore.Save(ctx, settings); err != nil {
		return nil, apperrors.Persistence("failed to provision tenant settings", err).
			WithDetail("tenant_id", tenantID)
	}

	s.logger.Info("Provisioned tenant",
		zap.String("tenant_id", tenantID),
		zap.String("country", settings.Country),
		zap.String("currency", settings.Currency))

	s.cache.Set(tenantID, settings)
	return settings.Clone(), nil
}

// RecommendedDefaults returns the settings the onboarding and settings
// forms pre-fill for a country: the bundled preset when one exists, the
// baseline default otherwise, with the decimal precision recommended for
// the preset currency's minor unit.
func (s *SettingsService) RecommendedDefaults(country string) *model.TenantSettings {
	if preset, ok := model.PresetFor(country); ok {
		out := preset
		out.DecimalPrecision = locale.RecommendedPrecision(preset.Currency)
		return &out
	}
	return model.DefaultSettings("")
}

// Ping reports backing store health for readiness checks.
func (s *SettingsService) Ping(ctx context.Context) error {
	return s.settingsStore.Ping(ctx)
}
