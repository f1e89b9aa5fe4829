package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Document is a supporting document stored inside the documents jsonb column
type Document struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	URL      string `json:"url"`
}

// OwnershipRecord is one entry of the owner_history jsonb column
type OwnershipRecord struct {
	Owner  string `json:"owner"`
	TxHash string `json:"tx_hash"`
	Date   string `json:"date"`
}

// PricePoint is one entry of the price_history jsonb column
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Asset represents the assets table - user-created catalog assets
type Asset struct {
	// ID is the public asset identifier (UUID for created assets)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Seq is assigned by the database and gives the creation order
	Seq int64 `gorm:"column:seq;->;type:bigserial"`
	// Title is the display name of the asset
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the long-form description of the asset
	Description string `gorm:"column:description;not null;type:text"`
	// Category is one of real_estate, art, music, gaming
	Category string `gorm:"column:category;not null;type:text;index:idx_assets_category"`
	// Location is a free-form location string
	Location string `gorm:"column:location;not null;type:text"`

	// Images, Audio and Panorama360 are media URLs
	Images      datatypes.JSONSlice[string] `gorm:"column:images;not null;type:jsonb"`
	Audio       *string                     `gorm:"column:audio;type:text"`
	Panorama360 *string                     `gorm:"column:panorama_360;type:text"`

	// TotalSupply is the number of tokens minted, always positive
	TotalSupply int64 `gorm:"column:total_supply;not null"`
	// AvailableTokens is the number of tokens not yet sold
	AvailableTokens int64 `gorm:"column:available_tokens;not null"`
	// TotalValue is the USD valuation, price per token is derived from it
	TotalValue        float64 `gorm:"column:total_value;not null;type:double precision"`
	ExpectedYield     float64 `gorm:"column:expected_yield;not null;type:double precision"`
	MinimumInvestment float64 `gorm:"column:minimum_investment;not null;type:double precision"`
	Investors         int64   `gorm:"column:investors;not null;default:0"`
	KYCRequired       bool    `gorm:"column:kyc_required;not null;default:false"`

	OnChainMint        string  `gorm:"column:on_chain_mint;not null;type:text"`
	OracleValuationUSD float64 `gorm:"column:oracle_valuation_usd;not null;type:double precision"`
	MonthlyRevenue     float64 `gorm:"column:monthly_revenue;not null;type:double precision"`
	OperatingExpenses  float64 `gorm:"column:operating_expenses;not null;type:double precision"`

	Highlights   datatypes.JSONSlice[string]          `gorm:"column:highlights;not null;type:jsonb"`
	Documents    datatypes.JSONSlice[Document]        `gorm:"column:documents;not null;type:jsonb"`
	OwnerHistory datatypes.JSONSlice[OwnershipRecord] `gorm:"column:owner_history;not null;type:jsonb"`
	PriceHistory datatypes.JSONSlice[PricePoint]      `gorm:"column:price_history;not null;type:jsonb"`
	// Attributes holds type-specific details such as artist or year built
	Attributes datatypes.JSONType[map[string]string] `gorm:"column:attributes;not null;type:jsonb"`

	// CreatedAt and UpdatedAt are set by the catalog service
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
