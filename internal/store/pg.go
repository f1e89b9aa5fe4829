package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/store/schema"
)

// pgUniqueViolation is the SQLSTATE raised on a primary key conflict
const pgUniqueViolation = "23505"

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero values are replaced by the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateAsset inserts a new asset row
func (s *pgStore) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	row := toSchemaAsset(asset)

	err := s.db.WithContext(ctx).Create(row).Error
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrAssetAlreadyExists, asset.ID)
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// GetAsset retrieves an asset by id
func (s *pgStore) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	var row schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return toDomainAsset(&row), nil
}

// ListAssets returns the assets matching the filter ordered by creation
func (s *pgStore) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	query := s.db.WithContext(ctx).Model(&schema.Asset{})

	if filter.Category != "" && filter.Category != domain.CategoryAll {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.MinPrice != nil {
		query = query.Where("total_value / total_supply >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("total_value / total_supply <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var rows []schema.Asset
	if err := query.Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*domain.Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, toDomainAsset(&rows[i]))
	}
	return assets, nil
}

// UpdateAsset locks the row, applies fn and saves the result in one transaction
func (s *pgStore) UpdateAsset(ctx context.Context, id string, fn UpdateFunc) (*domain.Asset, error) {
	var updated *domain.Asset

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.Asset
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
			}
			return fmt.Errorf("failed to lock asset: %w", err)
		}

		asset := toDomainAsset(&row)
		if err := fn(asset); err != nil {
			return err
		}
		asset.ID = id

		next := toSchemaAsset(asset)
		err = tx.Model(&schema.Asset{}).
			Where("id = ?", id).
			Select("*").
			Omit("id", "seq", "created_at").
			Updates(next).Error
		if err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}

		updated = asset
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint violation
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqlState interface{ SQLState() string }
	if errors.As(err, &sqlState) {
		return sqlState.SQLState() == pgUniqueViolation
	}
	return false
}

// escapeLike escapes the LIKE wildcards so the search term is matched literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
