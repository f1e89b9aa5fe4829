package dto

import (
	"github.com/rwa-market/asset-catalog/internal/oracle"
)

// CreateAssetResponse represents the response for listing a new asset
type CreateAssetResponse struct {
	Success bool           `json:"success"`
	Asset   *AssetResponse `json:"asset"`
	Message string         `json:"message"`
}

// EditAssetResponse represents the response for editing an asset.
// Persisted is false when the asset is read-only and Asset is a preview.
type EditAssetResponse struct {
	Success   bool           `json:"success"`
	Asset     *AssetResponse `json:"asset"`
	Message   string         `json:"message"`
	Persisted bool           `json:"persisted"`
}

// InvestResponse represents the response for a simulated token purchase
type InvestResponse struct {
	Success bool           `json:"success"`
	Asset   *AssetResponse `json:"asset"`
	TxHash  string         `json:"txHash"`
	Tokens  int64          `json:"tokens"`
	Amount  float64        `json:"amount"`
	Message string         `json:"message"`
}

// PricesResponse represents the quote-currency prices
type PricesResponse struct {
	Prices []oracle.Quote `json:"prices"`
}
