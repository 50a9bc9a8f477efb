package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/shelfline/locale-service/internal/model"
)

// PostgresSettingsStore implements SettingsStore for PostgreSQL
type PostgresSettingsStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ SettingsStore = (*PostgresSettingsStore)(nil)

// NewPostgresSettingsStore creates a new PostgreSQL settings store
func NewPostgresSettingsStore(
	host string,
	port int,
	database, user, password string,
	maxConns, minConns int,
	logger *zap.Logger,
) (*PostgresSettingsStore, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s pool_max_conns=%d pool_min_conns=%d",
		host, port, database, user, password, maxConns, minConns,
	)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSettingsStore{
		pool:   pool,
		logger: logger,
	}, nil
}

// Load retrieves the settings record for a tenant
func (s *PostgresSettingsStore) Load(ctx context.Context, tenantID string) (*model.TenantSettings, error) {
	query := `
		SELECT tenant_id, company_name, country, currency, timezone,
		       date_format, time_format, decimal_precision,
		       created_at, updated_at, version
		FROM tenant_settings
		WHERE tenant_id = $1
	`

	var settings model.TenantSettings
	var dateFormat, timeFormat, precision string
	err := s.pool.QueryRow(ctx, query, tenantID).Scan(
		&settings.TenantID,
		&settings.CompanyName,
		&settings.Country,
		&settings.Currency,
		&settings.Timezone,
		&dateFormat,
		&timeFormat,
		&precision,
		&settings.CreatedAt,
		&settings.UpdatedAt,
		&settings.Version,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load tenant settings: %w", err)
	}

	settings.DateFormat = model.DateFormat(dateFormat)
	settings.TimeFormat = model.TimeFormat(timeFormat)
	settings.DecimalPrecision = model.DecimalPrecision(precision)

	return &settings, nil
}

// Save stores a full replacement of the tenant's settings record. The row is
// created on first save and replaced thereafter; every column is written so
// a partial patch is impossible.
func (s *PostgresSettingsStore) Save(ctx context.Context, settings *model.TenantSettings) error {
	query := `
		INSERT INTO tenant_settings (
			tenant_id, company_name, country, currency, timezone,
			date_format, time_format, decimal_precision,
			created_at, updated_at, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (tenant_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			country = EXCLUDED.country,
			currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone,
			date_format = EXCLUDED.date_format,
			time_format = EXCLUDED.time_format,
			decimal_precision = EXCLUDED.decimal_precision,
			updated_at = EXCLUDED.updated_at,
			version = EXCLUDED.version
		WHERE tenant_settings.version < EXCLUDED.version
	`

	tag, err := s.pool.Exec(ctx, query,
		settings.TenantID,
		settings.CompanyName,
		settings.Country,
		settings.Currency,
		settings.Timezone,
		string(settings.DateFormat),
		string(settings.TimeFormat),
		string(settings.DecimalPrecision),
		settings.CreatedAt,
		settings.UpdatedAt,
		settings.Version,
	)

	if err != nil {
		return fmt.Errorf("failed to save tenant settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stale settings version %d for tenant %s", settings.Version, settings.TenantID)
	}

	return nil
}

// Ping checks the database connection
func (s *PostgresSettingsStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool
func (s *PostgresSettingsStore) Close() {
	s.pool.Close()
}

// GetPool returns the underlying connection pool for shared use
func (s *PostgresSettingsStore) GetPool() *pgxpool.Pool {
	return s.pool
}
