package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shelfline/locale-service/internal/model"
)

// MemorySettingsStore implements SettingsStore with an in-memory map. It is
// the default driver for development and tests; records survive for the
// lifetime of the store instance, so handing the same store to a rebuilt
// service simulates a reload or re-authentication.
type MemorySettingsStore struct {
	records map[string]*model.TenantSettings
	mu      sync.RWMutex
	logger  *zap.Logger
}

var _ SettingsStore = (*MemorySettingsStore)(nil)

// NewMemorySettingsStore creates an empty in-memory settings store
func NewMemorySettingsStore(logger *zap.Logger) *MemorySettingsStore {
	return &MemorySettingsStore{
		records: make(map[string]*model.TenantSettings),
		logger:  logger,
	}
}

// Load retrieves the settings record for a tenant
func (s *MemorySettingsStore) Load(ctx context.Context, tenantID string) (*model.TenantSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[tenantID]
	if !ok {
		return nil, ErrNotFound
	}
	return record.Clone(), nil
}

// Save stores a full replacement of the tenant's settings record
func (s *MemorySettingsStore) Save(ctx context.Context, settings *model.TenantSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[settings.TenantID] = settings.Clone()
	return nil
}

// Ping always succeeds for the in-memory store
func (s *MemorySettingsStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemorySettingsStore) Close() {}

// Size returns the number of stored records
func (s *MemorySettingsStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
