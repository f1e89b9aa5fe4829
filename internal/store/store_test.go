package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwa-market/asset-catalog/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// buildTestAsset creates a fully populated asset with the given category and pricing
func buildTestAsset(title string, category domain.Category, totalValue float64, supply int64) *domain.Asset {
	audio := "https://cdn.example.com/audio.mp3"
	return &domain.Asset{
		ID:                 uuid.NewString(),
		Title:              title,
		Description:        "Description of " + title,
		Category:           category,
		Location:           "Lisbon, Portugal",
		Images:             []string{"https://cdn.example.com/1.jpg"},
		Audio:              &audio,
		TotalSupply:        supply,
		AvailableTokens:    supply,
		TotalValue:         totalValue,
		ExpectedYield:      7.5,
		MinimumInvestment:  100,
		KYCRequired:        true,
		OnChainMint:        "sim_mint_abc",
		OracleValuationUSD: totalValue,
		MonthlyRevenue:     1200,
		OperatingExpenses:  300,
		Highlights:         []string{"Prime location", "Stable income"},
		Documents:          []domain.Document{{Name: "Title deed", Verified: true, URL: "https://docs.example.com/deed.pdf"}},
		Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
			{Owner: "Marketplace User", TxHash: "sim_tx_1", Date: "2025-03-14"},
		}},
		PriceHistory: []domain.PricePoint{{Date: "2025-03", Price: totalValue / float64(supply)}},
		Attributes:   map[string]string{"yearBuilt": "1998"},
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
}

func float64Ptr(f float64) *float64 {
	return &f
}

func assetIDs(assets []*domain.Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	return ids
}

// =============================================================================
// Tests
// =============================================================================

func testCreateAndGetAsset(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("round trips every field", func(t *testing.T) {
		asset := buildTestAsset("Harbor Loft", domain.CategoryRealEstate, 500000, 1000)
		require.NoError(t, store.CreateAsset(ctx, asset))

		got, err := store.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, asset.ID, got.ID)
		assert.Equal(t, asset.Title, got.Title)
		assert.Equal(t, asset.Description, got.Description)
		assert.Equal(t, domain.CategoryRealEstate, got.Category)
		assert.Equal(t, asset.Location, got.Location)
		assert.Equal(t, asset.Images, got.Images)
		require.NotNil(t, got.Audio)
		assert.Equal(t, *asset.Audio, *got.Audio)
		assert.Nil(t, got.Panorama360)
		assert.Equal(t, int64(1000), got.TotalSupply)
		assert.Equal(t, int64(1000), got.AvailableTokens)
		assert.InDelta(t, 500.0, got.PricePerToken(), 1e-9)
		assert.True(t, got.KYCRequired)
		assert.InDelta(t, 900.0, got.NetIncome(), 1e-9)
		assert.Equal(t, asset.Highlights, got.Highlights)
		assert.Equal(t, asset.Documents, got.Documents)
		assert.Equal(t, asset.Provenance.OwnerHistory, got.Provenance.OwnerHistory)
		assert.Equal(t, asset.PriceHistory, got.PriceHistory)
		assert.Equal(t, asset.Attributes, got.Attributes)
		assert.True(t, testNow.Equal(got.CreatedAt))
	})

	t.Run("get non-existent asset returns nil", func(t *testing.T) {
		got, err := store.GetAsset(ctx, "nonexistent-id")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returned asset is a copy", func(t *testing.T) {
		asset := buildTestAsset("Copy Check", domain.CategoryArt, 1000, 10)
		require.NoError(t, store.CreateAsset(ctx, asset))

		got, err := store.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		got.Highlights[0] = "mutated"
		got.Title = "mutated"

		again, err := store.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, "Copy Check", again.Title)
		assert.Equal(t, "Prime location", again.Highlights[0])
	})
}

func testCreateAssetDuplicate(t *testing.T, store Store) {
	ctx := context.Background()

	asset := buildTestAsset("Duplicate", domain.CategoryMusic, 1000, 10)
	require.NoError(t, store.CreateAsset(ctx, asset))

	err := store.CreateAsset(ctx, asset)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssetAlreadyExists))
}

func testListAssets(t *testing.T, store Store) {
	ctx := context.Background()

	// price per token: 10, 1.5, 2, 250, 1
	a1 := buildTestAsset("Manhattan Penthouse", domain.CategoryRealEstate, 10000, 1000)
	a2 := buildTestAsset("Digital Sunrise", domain.CategoryArt, 150, 100)
	a3 := buildTestAsset("Summer Hits", domain.CategoryMusic, 2000, 1000)
	a4 := buildTestAsset("Legendary Sword", domain.CategoryGaming, 2500, 10)
	a5 := buildTestAsset("Abstract 100%_off", domain.CategoryArt, 500, 500)
	a5.Description = "A view of MANHATTAN at night"

	for _, a := range []*domain.Asset{a1, a2, a3, a4, a5} {
		require.NoError(t, store.CreateAsset(ctx, a))
	}

	t.Run("no filter returns creation order", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{a1.ID, a2.ID, a3.ID, a4.ID, a5.ID}, assetIDs(assets))
	})

	t.Run("category all is no filter", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{Category: domain.CategoryAll})
		require.NoError(t, err)
		assert.Len(t, assets, 5)
	})

	t.Run("category filter preserves order", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{Category: domain.CategoryArt})
		require.NoError(t, err)
		assert.Equal(t, []string{a2.ID, a5.ID}, assetIDs(assets))
	})

	t.Run("price range is inclusive", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{MinPrice: float64Ptr(1), MaxPrice: float64Ptr(2)})
		require.NoError(t, err)
		assert.Equal(t, []string{a2.ID, a3.ID, a5.ID}, assetIDs(assets))
		for _, a := range assets {
			assert.GreaterOrEqual(t, a.PricePerToken(), 1.0)
			assert.LessOrEqual(t, a.PricePerToken(), 2.0)
		}
	})

	t.Run("min price only", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{MinPrice: float64Ptr(10)})
		require.NoError(t, err)
		assert.Equal(t, []string{a1.ID, a4.ID}, assetIDs(assets))
	})

	t.Run("search is case-insensitive over title and description", func(t *testing.T) {
		for _, term := range []string{"manhattan", "MANHATTAN", "Manhattan"} {
			assets, err := store.ListAssets(ctx, domain.AssetFilter{Search: term})
			require.NoError(t, err)
			assert.Equal(t, []string{a1.ID, a5.ID}, assetIDs(assets), term)
		}
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{Search: "100%_"})
		require.NoError(t, err)
		assert.Equal(t, []string{a5.ID}, assetIDs(assets))

		assets, err = store.ListAssets(ctx, domain.AssetFilter{Search: "%"})
		require.NoError(t, err)
		assert.Equal(t, []string{a5.ID}, assetIDs(assets))
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		assets, err := store.ListAssets(ctx, domain.AssetFilter{
			Category: domain.CategoryArt,
			MaxPrice: float64Ptr(1.2),
			Search:   "manhattan",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{a5.ID}, assetIDs(assets))
	})
}

func testUpdateAsset(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("applies the mutation", func(t *testing.T) {
		asset := buildTestAsset("Update Me", domain.CategoryRealEstate, 1000, 100)
		require.NoError(t, store.CreateAsset(ctx, asset))

		later := testNow.Add(time.Hour)
		updated, err := store.UpdateAsset(ctx, asset.ID, func(a *domain.Asset) error {
			a.Title = "Updated"
			a.AvailableTokens -= 10
			a.Investors++
			a.Provenance.OwnerHistory = append(a.Provenance.OwnerHistory, domain.OwnershipRecord{
				Owner: "investor-1", TxHash: "sim_tx_2", Date: "2025-03-15",
			})
			a.UpdatedAt = later
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "Updated", updated.Title)
		assert.Equal(t, int64(90), updated.AvailableTokens)

		got, err := store.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated", got.Title)
		assert.Equal(t, int64(90), got.AvailableTokens)
		assert.Equal(t, int64(1), got.Investors)
		assert.Len(t, got.Provenance.OwnerHistory, 2)
		assert.Equal(t, "investor-1", got.Provenance.OwnerHistory[1].Owner)
		assert.True(t, later.Equal(got.UpdatedAt))
		assert.True(t, testNow.Equal(got.CreatedAt))
	})

	t.Run("id cannot be changed", func(t *testing.T) {
		asset := buildTestAsset("Fixed ID", domain.CategoryArt, 1000, 100)
		require.NoError(t, store.CreateAsset(ctx, asset))

		updated, err := store.UpdateAsset(ctx, asset.ID, func(a *domain.Asset) error {
			a.ID = "other-id"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, asset.ID, updated.ID)
	})

	t.Run("callback error aborts the update", func(t *testing.T) {
		asset := buildTestAsset("Abort", domain.CategoryMusic, 1000, 100)
		require.NoError(t, store.CreateAsset(ctx, asset))

		errAbort := errors.New("abort")
		_, err := store.UpdateAsset(ctx, asset.ID, func(a *domain.Asset) error {
			a.Title = "should not persist"
			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		got, err := store.GetAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Equal(t, "Abort", got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.UpdateAsset(ctx, "nonexistent-id", func(a *domain.Asset) error {
			return nil
		})
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})
}

func testManySequentialCreates(t *testing.T, store Store) {
	ctx := context.Background()

	const n = 50
	for i := 0; i < n; i++ {
		asset := buildTestAsset(fmt.Sprintf("Asset %d", i), domain.CategoryGaming, 100, 10)
		require.NoError(t, store.CreateAsset(ctx, asset))
	}

	assets, err := store.ListAssets(ctx, domain.AssetFilter{Category: domain.CategoryGaming})
	require.NoError(t, err)
	require.Len(t, assets, n)
	for i, a := range assets {
		assert.Equal(t, fmt.Sprintf("Asset %d", i), a.Title)
	}
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateAndGetAsset", testCreateAndGetAsset},
		{"CreateAssetDuplicate", testCreateAssetDuplicate},
		{"ListAssets", testListAssets},
		{"UpdateAsset", testUpdateAsset},
		{"ManySequentialCreates", testManySequentialCreates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
