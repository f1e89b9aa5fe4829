package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rwa-market/asset-catalog/internal/domain"
)

type memoryStore struct {
	mu     sync.RWMutex
	assets []*domain.Asset
	index  map[string]int
}

// NewMemoryStore creates a process-local store. Assets are lost on restart.
func NewMemoryStore() Store {
	return &memoryStore{
		index: make(map[string]int),
	}
}

// CreateAsset appends a copy of the asset
func (s *memoryStore) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[asset.ID]; ok {
		return fmt.Errorf("%w: %s", ErrAssetAlreadyExists, asset.ID)
	}

	s.index[asset.ID] = len(s.assets)
	s.assets = append(s.assets, asset.Clone())
	return nil
}

// GetAsset retrieves a copy of the asset, nil when it does not exist
func (s *memoryStore) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	return s.assets[i].Clone(), nil
}

// ListAssets returns copies of the matching assets in creation order
func (s *memoryStore) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if filter.Match(a) {
			result = append(result, a.Clone())
		}
	}
	return result, nil
}

// UpdateAsset applies fn to a copy under the write lock and swaps it in on success
func (s *memoryStore) UpdateAsset(ctx context.Context, id string, fn UpdateFunc) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}

	updated := s.assets[i].Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	updated.ID = id

	s.assets[i] = updated
	return updated.Clone(), nil
}
