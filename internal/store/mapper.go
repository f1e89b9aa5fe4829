package store

import (
	"gorm.io/datatypes"

	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/store/schema"
)

// toSchemaAsset maps a domain asset to its database row
func toSchemaAsset(a *domain.Asset) *schema.Asset {
	documents := make([]schema.Document, 0, len(a.Documents))
	for _, d := range a.Documents {
		documents = append(documents, schema.Document{Name: d.Name, Verified: d.Verified, URL: d.URL})
	}

	ownerHistory := make([]schema.OwnershipRecord, 0, len(a.Provenance.OwnerHistory))
	for _, r := range a.Provenance.OwnerHistory {
		ownerHistory = append(ownerHistory, schema.OwnershipRecord{Owner: r.Owner, TxHash: r.TxHash, Date: r.Date})
	}

	priceHistory := make([]schema.PricePoint, 0, len(a.PriceHistory))
	for _, p := range a.PriceHistory {
		priceHistory = append(priceHistory, schema.PricePoint{Date: p.Date, Price: p.Price})
	}

	attributes := a.Attributes
	if attributes == nil {
		attributes = map[string]string{}
	}

	return &schema.Asset{
		ID:                 a.ID,
		Title:              a.Title,
		Description:        a.Description,
		Category:           string(a.Category),
		Location:           a.Location,
		Images:             datatypes.NewJSONSlice(nonNil(a.Images)),
		Audio:              a.Audio,
		Panorama360:        a.Panorama360,
		TotalSupply:        a.TotalSupply,
		AvailableTokens:    a.AvailableTokens,
		TotalValue:         a.TotalValue,
		ExpectedYield:      a.ExpectedYield,
		MinimumInvestment:  a.MinimumInvestment,
		Investors:          a.Investors,
		KYCRequired:        a.KYCRequired,
		OnChainMint:        a.OnChainMint,
		OracleValuationUSD: a.OracleValuationUSD,
		MonthlyRevenue:     a.MonthlyRevenue,
		OperatingExpenses:  a.OperatingExpenses,
		Highlights:         datatypes.NewJSONSlice(nonNil(a.Highlights)),
		Documents:          datatypes.NewJSONSlice(documents),
		OwnerHistory:       datatypes.NewJSONSlice(ownerHistory),
		PriceHistory:       datatypes.NewJSONSlice(priceHistory),
		Attributes:         datatypes.NewJSONType(attributes),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// toDomainAsset maps a database row to a domain asset
func toDomainAsset(row *schema.Asset) *domain.Asset {
	documents := make([]domain.Document, 0, len(row.Documents))
	for _, d := range row.Documents {
		documents = append(documents, domain.Document{Name: d.Name, Verified: d.Verified, URL: d.URL})
	}

	ownerHistory := make([]domain.OwnershipRecord, 0, len(row.OwnerHistory))
	for _, r := range row.OwnerHistory {
		ownerHistory = append(ownerHistory, domain.OwnershipRecord{Owner: r.Owner, TxHash: r.TxHash, Date: r.Date})
	}

	priceHistory := make([]domain.PricePoint, 0, len(row.PriceHistory))
	for _, p := range row.PriceHistory {
		priceHistory = append(priceHistory, domain.PricePoint{Date: p.Date, Price: p.Price})
	}

	return &domain.Asset{
		ID:                 row.ID,
		Title:              row.Title,
		Description:        row.Description,
		Category:           domain.Category(row.Category),
		Location:           row.Location,
		Images:             nonNil([]string(row.Images)),
		Audio:              row.Audio,
		Panorama360:        row.Panorama360,
		TotalSupply:        row.TotalSupply,
		AvailableTokens:    row.AvailableTokens,
		TotalValue:         row.TotalValue,
		ExpectedYield:      row.ExpectedYield,
		MinimumInvestment:  row.MinimumInvestment,
		Investors:          row.Investors,
		KYCRequired:        row.KYCRequired,
		OnChainMint:        row.OnChainMint,
		OracleValuationUSD: row.OracleValuationUSD,
		MonthlyRevenue:     row.MonthlyRevenue,
		OperatingExpenses:  row.OperatingExpenses,
		Highlights:         nonNil([]string(row.Highlights)),
		Documents:          documents,
		Provenance:         domain.Provenance{OwnerHistory: ownerHistory},
		PriceHistory:       priceHistory,
		Attributes:         row.Attributes.Data(),
		CreatedAt:          row.CreatedAt.UTC(),
		UpdatedAt:          row.UpdatedAt.UTC(),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
