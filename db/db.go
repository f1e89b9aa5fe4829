// Package db ships the PostgreSQL schema of the asset catalog.
package db

import (
	"context"
	_ "embed"
	"fmt"

	"gorm.io/gorm"
)

//go:embed init_pg_db.sql
var initSchema string

// InitSchema returns the schema initialization SQL
func InitSchema() string {
	return initSchema
}

// Migrate applies the schema to the database. The statements are idempotent.
func Migrate(ctx context.Context, gormDB *gorm.DB) error {
	if err := gormDB.WithContext(ctx).Exec(initSchema).Error; err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
