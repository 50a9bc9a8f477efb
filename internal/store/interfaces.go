package store

import (
	"context"
	"errors"

	"github.com/shelfline/locale-service/internal/model"
)

// ErrNotFound is returned when a tenant has no persisted settings record
var ErrNotFound = errors.New("not found")

// SettingsStore is the persistence boundary for tenant locale settings.
// Save is always a full-record replacement, never a partial patch; a record
// is created once at tenant onboarding and replaced thereafter.
type SettingsStore interface {
	Load(ctx context.Context, tenantID string) (*model.TenantSettings, error)
	Save(ctx context.Context, settings *model.TenantSettings) error

	// Health check
	Ping(ctx context.Context) error
	Close()
}
