package store

import (
	"context"
	"errors"

	"github.com/rwa-market/asset-catalog/internal/domain"
)

var (
	// ErrAssetAlreadyExists is returned by CreateAsset when the id is taken
	ErrAssetAlreadyExists = errors.New("asset already exists")
	// ErrAssetNotFound is returned by UpdateAsset when the id is unknown
	ErrAssetNotFound = errors.New("asset not found")
)

// UpdateFunc mutates an asset in place. Returning an error aborts the update without writing.
type UpdateFunc func(asset *domain.Asset) error

// Store defines the interface for persisting user-created assets
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAsset appends a new asset
	CreateAsset(ctx context.Context, asset *domain.Asset) error
	// GetAsset retrieves an asset by id, returns nil when it does not exist
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	// ListAssets returns the assets matching the filter in creation order
	ListAssets(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error)
	// UpdateAsset atomically reads, mutates and writes back an asset
	UpdateAsset(ctx context.Context, id string, fn UpdateFunc) (*domain.Asset, error)
}
