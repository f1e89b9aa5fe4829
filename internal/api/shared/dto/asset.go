package dto

import (
	"time"

	"github.com/rwa-market/asset-catalog/internal/catalog"
	"github.com/rwa-market/asset-catalog/internal/domain"
)

// AssetResponse is the wire form of an asset.
// Aliased fields are emitted side by side for older clients and always carry the same value.
type AssetResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        domain.Category `json:"type"`
	Category    domain.Category `json:"category"`
	Description string          `json:"description"`
	Location    string          `json:"location"`

	Images      []string `json:"images"`
	Audio       *string  `json:"audio"`
	Panorama360 *string  `json:"panorama360"`

	TotalSupply        int64   `json:"totalSupply"`
	TokenSupply        int64   `json:"tokenSupply"`
	AvailableTokens    int64   `json:"availableTokens"`
	FractionsAvailable int64   `json:"fractionsAvailable"`
	PricePerToken      float64 `json:"pricePerToken"`
	PricePerFraction   float64 `json:"pricePerFraction"`
	TotalValue         float64 `json:"totalValue"`
	ExpectedYield      float64 `json:"expectedYield"`
	AnnualYield        float64 `json:"annualYield"`
	MinimumInvestment  float64 `json:"minimumInvestment"`
	Investors          int64   `json:"investors"`
	KYCRequired        bool    `json:"kycRequired"`

	OnChainMint        string  `json:"onChainMint"`
	OracleValuationUSD float64 `json:"oracleValuationUSD"`
	MonthlyRevenue     float64 `json:"monthlyRevenue"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	NetIncome          float64 `json:"netIncome"`

	Highlights   []string            `json:"highlights"`
	Documents    []domain.Document   `json:"documents"`
	Provenance   domain.Provenance   `json:"provenance"`
	PriceHistory []domain.PricePoint `json:"priceHistory"`
	Attributes   map[string]string   `json:"attributes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MapAssetToDTO maps a domain asset to its wire form
func MapAssetToDTO(a *domain.Asset) *AssetResponse {
	if a == nil {
		return nil
	}

	price := a.PricePerToken()
	return &AssetResponse{
		ID:                 a.ID,
		Title:              a.Title,
		Type:               a.Category,
		Category:           a.Category,
		Description:        a.Description,
		Location:           a.Location,
		Images:             orEmpty(a.Images),
		Audio:              a.Audio,
		Panorama360:        a.Panorama360,
		TotalSupply:        a.TotalSupply,
		TokenSupply:        a.TotalSupply,
		AvailableTokens:    a.AvailableTokens,
		FractionsAvailable: a.AvailableTokens,
		PricePerToken:      price,
		PricePerFraction:   price,
		TotalValue:         a.TotalValue,
		ExpectedYield:      a.ExpectedYield,
		AnnualYield:        a.ExpectedYield,
		MinimumInvestment:  a.MinimumInvestment,
		Investors:          a.Investors,
		KYCRequired:        a.KYCRequired,
		OnChainMint:        a.OnChainMint,
		OracleValuationUSD: a.OracleValuationUSD,
		MonthlyRevenue:     a.MonthlyRevenue,
		OperatingExpenses:  a.OperatingExpenses,
		NetIncome:          a.NetIncome(),
		Highlights:         orEmpty(a.Highlights),
		Documents:          orEmpty(a.Documents),
		Provenance:         domain.Provenance{OwnerHistory: orEmpty(a.Provenance.OwnerHistory)},
		PriceHistory:       orEmpty(a.PriceHistory),
		Attributes:         a.Attributes,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// MapAssetsToDTO maps a list of assets, never returning nil
func MapAssetsToDTO(assets []*domain.Asset) []*AssetResponse {
	result := make([]*AssetResponse, 0, len(assets))
	for _, a := range assets {
		result = append(result, MapAssetToDTO(a))
	}
	return result
}

// EditableAssetResponse is the edit form pre-fill of an asset
type EditableAssetResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Location          string          `json:"location"`
	AssetType         domain.Category `json:"assetType"`
	TotalValue        float64         `json:"totalValue"`
	TokenSupply       int64           `json:"tokenSupply"`
	ExpectedYield     float64         `json:"expectedYield"`
	MinimumInvestment float64         `json:"minimumInvestment"`
	KYCRequired       bool            `json:"kycRequired"`
	Images            []string        `json:"images"`
	Audio             *string         `json:"audio"`
	Panorama360       *string         `json:"panorama360"`
	Highlights        []string        `json:"highlights"`
}

// MapEditableAssetToDTO maps the editable subset of an asset
func MapEditableAssetToDTO(e *catalog.EditableAsset) *EditableAssetResponse {
	if e == nil {
		return nil
	}

	return &EditableAssetResponse{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		Location:          e.Location,
		AssetType:         e.AssetType,
		TotalValue:        e.TotalValue,
		TokenSupply:       e.TokenSupply,
		ExpectedYield:     e.ExpectedYield,
		MinimumInvestment: e.MinimumInvestment,
		KYCRequired:       e.KYCRequired,
		Images:            orEmpty(e.Images),
		Audio:             e.Audio,
		Panorama360:       e.Panorama360,
		Highlights:        orEmpty(e.Highlights),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
