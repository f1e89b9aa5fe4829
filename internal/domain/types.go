package domain

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Category represents the kind of real-world or digital item an asset tokenizes
type Category string

const (
	CategoryRealEstate Category = "real_estate"
	CategoryArt        Category = "art"
	CategoryMusic      Category = "music"
	CategoryGaming     Category = "gaming"

	// CategoryAll is accepted by list filters only, it is never stored on an asset
	CategoryAll Category = "all"
)

// Categories lists every storable category in display order
var Categories = []Category{CategoryRealEstate, CategoryArt, CategoryMusic, CategoryGaming}

// IsValidCategory checks if a category can be stored on an asset
func IsValidCategory(category Category) bool {
	return slices.Contains(Categories, category)
}

// ParseCategory parses a category string, rejecting unknown values and "all"
func ParseCategory(s string) (Category, bool) {
	category := Category(strings.TrimSpace(s))
	if !IsValidCategory(category) {
		return "", false
	}
	return category, true
}

// Document is a supporting document attached to an asset listing
type Document struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	URL      string `json:"url"`
}

// OwnershipRecord is one entry of the append-only ownership ledger
type OwnershipRecord struct {
	Owner  string `json:"owner"`
	TxHash string `json:"txHash"`
	Date   string `json:"date"` // YYYY-MM-DD
}

// PricePoint is one entry of the append-only price history
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM
	Price float64 `json:"price"`
}

// Provenance holds the recorded ownership history of an asset
type Provenance struct {
	OwnerHistory []OwnershipRecord `json:"ownerHistory"`
}

// Asset is a tokenized item listed in the catalog.
//
// The price per token is not stored: it is always derived from TotalValue and
// TotalSupply through PricePerToken.
type Asset struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Location    string

	Images      []string
	Audio       *string
	Panorama360 *string

	TotalSupply       int64
	AvailableTokens   int64
	TotalValue        float64
	ExpectedYield     float64
	MinimumInvestment float64
	Investors         int64
	KYCRequired       bool

	OnChainMint        string
	OracleValuationUSD float64
	MonthlyRevenue     float64
	OperatingExpenses  float64

	Highlights   []string
	Documents    []Document
	Provenance   Provenance
	PriceHistory []PricePoint
	Attributes   map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PricePerToken returns TotalValue / TotalSupply, or 0 for an asset without supply
func (a *Asset) PricePerToken() float64 {
	if a.TotalSupply <= 0 {
		return 0
	}
	return a.TotalValue / float64(a.TotalSupply)
}

// NetIncome returns monthly revenue minus operating expenses.
// Both figures must be reported for the result to be meaningful, otherwise 0 is returned.
func (a *Asset) NetIncome() float64 {
	if a.MonthlyRevenue == 0 || a.OperatingExpenses == 0 {
		return 0
	}
	return a.MonthlyRevenue - a.OperatingExpenses
}

// SoldTokens returns the number of tokens already bought by investors
func (a *Asset) SoldTokens() int64 {
	return a.TotalSupply - a.AvailableTokens
}

// Clone returns a deep copy of the asset
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}

	c := *a
	c.Images = slices.Clone(a.Images)
	c.Highlights = slices.Clone(a.Highlights)
	c.Documents = slices.Clone(a.Documents)
	c.PriceHistory = slices.Clone(a.PriceHistory)
	c.Provenance.OwnerHistory = slices.Clone(a.Provenance.OwnerHistory)
	c.Attributes = maps.Clone(a.Attributes)
	if a.Audio != nil {
		audio := *a.Audio
		c.Audio = &audio
	}
	if a.Panorama360 != nil {
		panorama := *a.Panorama360
		c.Panorama360 = &panorama
	}
	return &c
}

// AssetFilter holds the conjunctive list filters.
// Zero values disable the corresponding filter.
type AssetFilter struct {
	Category Category
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// Match reports whether the asset passes every supplied filter
func (f AssetFilter) Match(a *Asset) bool {
	if f.Category != "" && f.Category != CategoryAll && a.Category != f.Category {
		return false
	}

	price := a.PricePerToken()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Description), search) {
			return false
		}
	}

	return true
}

// FilterAssets returns the assets that match the filter, preserving their relative order
func FilterAssets(assets []*Asset, filter AssetFilter) []*Asset {
	result := make([]*Asset, 0, len(assets))
	for _, a := range assets {
		if filter.Match(a) {
			result = append(result, a)
		}
	}
	return result
}
