package store

import (
	"sync"
	"time"

	"github.com/shelfline/locale-service/internal/model"
)

// SettingsCache provides in-memory caching for tenant settings records,
// bounding load traffic to the backing store.
type SettingsCache struct {
	entries map[string]*cacheEntry
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cacheEntry struct {
	settings  *model.TenantSettings
	expiresAt time.Time
}

// NewSettingsCache creates a new cache
func NewSettingsCache(ttl time.Duration, maxSize int) *SettingsCache {
	c := &SettingsCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}

	// Start cleanup goroutine
	go c.cleanup()

	return c
}

// Get retrieves a tenant's settings from cache
func (c *SettingsCache) Get(tenantID string) (*model.TenantSettings, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[tenantID]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.settings.Clone(), true
}

// Set stores a tenant's settings in cache
func (c *SettingsCache) Set(tenantID string, settings *model.TenantSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[tenantID] = &cacheEntry{
		settings:  settings.Clone(),
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes a tenant's settings from cache
func (c *SettingsCache) Delete(tenantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, tenantID)
}

// Clear removes all entries from cache
func (c *SettingsCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
}

// evictLocked drops an expired entry, or an arbitrary one when nothing has
// expired yet. Callers hold the write lock.
func (c *SettingsCache) evictLocked() {
	now := time.Now()
	for tenantID, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, tenantID)
			return
		}
	}
	for tenantID := range c.entries {
		delete(c.entries, tenantID)
		return
	}
}

// cleanup periodically removes expired entries
func (c *SettingsCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for tenantID, entry := range c.entries {
			if now.After(entry.expiresAt) {
				delete(c.entries, tenantID)
			}
		}
		c.mu.Unlock()
	}
}

// Size returns the number of entries in cache
func (c *SettingsCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
