package catalog

import (
	"time"

	"github.com/rwa-market/asset-catalog/internal/domain"
)

// seedListedAt is the listing time of every seed asset
var seedListedAt = time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

// seedAssets returns the fixed marketplace listings served before any created asset.
// TotalValue is the listed price per token times the supply, the independent appraisal
// is kept in OracleValuationUSD.
func seedAssets() []*domain.Asset {
	assets := []*domain.Asset{
		{
			ID:          "real-estate-1",
			Title:       "Luxury Apartment in Manhattan",
			Description: "Premium 2-bedroom apartment with stunning city views in the heart of Manhattan. Features modern amenities and prime location.",
			Category:    domain.CategoryRealEstate,
			Location:    "Manhattan, New York",
			Images: []string{
				"/luxury-manhattan-apartment-interior.jpg",
				"/manhattan-apartment-bedroom.jpg",
				"/manhattan-apartment-kitchen.jpg",
			},
			Panorama360:        strPtr("/360-degree-apartment-tour.jpg"),
			TotalSupply:        1000000,
			AvailableTokens:    750000,
			TotalValue:         250000,
			ExpectedYield:      12.5,
			MinimumInvestment:  100,
			Investors:          234,
			KYCRequired:        true,
			OnChainMint:        "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
			OracleValuationUSD: 2500000,
			MonthlyRevenue:     8500,
			OperatingExpenses:  2500,
			Highlights: []string{
				"Prime location in the center of Manhattan",
				"Modern amenities and panoramic views",
				"Stable rental yield of 12.5% per year",
				"Fully documented ownership history",
			},
			Documents: []domain.Document{
				{Name: "Property Deed", Verified: true, URL: "#"},
				{Name: "Insurance Policy", Verified: true, URL: "#"},
				{Name: "Inspection Report", Verified: true, URL: "#"},
				{Name: "Appraisal Report", Verified: true, URL: "#"},
			},
			Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
				{Owner: "Manhattan Real Estate LLC", TxHash: "5KJp4XK9b2vR4YmwGdVdGDFRTb7we1feNsvy6ndEeNsn", Date: "2024-01-15"},
				{Owner: "Premium Properties Inc", TxHash: "3Nc2k8PQHPsHNzSgd5uJkbHjRQoLvfhCyBzpDiVdvHWq", Date: "2023-08-20"},
			}},
			PriceHistory: []domain.PricePoint{
				{Date: "2024-01", Price: 0.22},
				{Date: "2024-02", Price: 0.23},
				{Date: "2024-03", Price: 0.24},
				{Date: "2024-04", Price: 0.245},
				{Date: "2024-05", Price: 0.25},
			},
			Attributes: map[string]string{
				"address":       "432 Park Avenue, New York, NY 10022",
				"yearBuilt":     "2015",
				"totalArea":     "1,200 sq ft",
				"bedrooms":      "2",
				"bathrooms":     "2",
				"occupancyRate": "100%",
				"monthlyRent":   "8500",
			},
		},
		{
			ID:                 "art-1",
			Title:              "Digital Renaissance #001",
			Description:        "Exclusive digital artwork combining classical Renaissance techniques with modern AI-generated elements. Limited edition piece.",
			Category:           domain.CategoryArt,
			Location:           "Digital Gallery",
			Images:             []string{"/renaissance-digital-art-masterpiece.jpg", "/digital-art-close-up-details.jpg"},
			TotalSupply:        100000,
			AvailableTokens:    85000,
			TotalValue:         150000,
			ExpectedYield:      8.5,
			MinimumInvestment:  100,
			Investors:          89,
			OnChainMint:        "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
			OracleValuationUSD: 150000,
			MonthlyRevenue:     1062.5,
			OperatingExpenses:  200,
			Highlights: []string{
				"A unique blend of classical and modern techniques",
				"Limited edition 1 of 1",
				"High resolution 4096x4096 pixels",
				"Documented ownership history",
			},
			Documents: []domain.Document{
				{Name: "Certificate of Authenticity", Verified: true, URL: "#"},
				{Name: "Artist Statement", Verified: true, URL: "#"},
				{Name: "Provenance Documentation", Verified: true, URL: "#"},
			},
			Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
				{Owner: "Digital Arts Collective", TxHash: "8FGh3XK9c4wS6ZnxHdWdHEGSTc8xf2gfOtwz7oeEfOto", Date: "2024-02-10"},
				{Owner: "Artist: Alex Chen", TxHash: "2Md3l9QIIQtIOoTth6vKlcIkSRpMwgiDzCqEjWdwIXr", Date: "2024-01-05"},
			}},
			PriceHistory: []domain.PricePoint{
				{Date: "2024-01", Price: 1.2},
				{Date: "2024-02", Price: 1.3},
				{Date: "2024-03", Price: 1.4},
				{Date: "2024-04", Price: 1.45},
				{Date: "2024-05", Price: 1.5},
			},
			Attributes: map[string]string{
				"artist":      "Alex Chen",
				"medium":      "Digital Art",
				"dimensions":  "4096x4096 pixels",
				"edition":     "1 of 1",
				"yearCreated": "2024",
			},
		},
		{
			ID:                 "music-1",
			Title:              "Synthwave Dreams Album",
			Description:        "Complete album featuring 12 tracks of premium synthwave music. Includes master rights and royalty distribution.",
			Category:           domain.CategoryMusic,
			Location:           "Music Studio",
			Images:             []string{"/synthwave-album-cover-neon.png", "/music-studio-recording.jpg"},
			Audio:              strPtr("/placeholder.mp3?query=synthwave electronic music sample"),
			TotalSupply:        500000,
			AvailableTokens:    320000,
			TotalValue:         400000,
			ExpectedYield:      15.2,
			MinimumInvestment:  100,
			Investors:          1250,
			OnChainMint:        "4VfE2id2afZ3E6BQMtwBduZGNjmksHwED8P6AP6fjlAU",
			OracleValuationUSD: 400000,
			MonthlyRevenue:     5066.67,
			OperatingExpenses:  500,
			Highlights: []string{
				"12 tracks of premium synthwave music",
				"Includes master recording rights",
				"Royalties distributed to investors",
				"High yield of 15.2% per year",
			},
			Documents: []domain.Document{
				{Name: "Master Recording Rights", Verified: true, URL: "#"},
				{Name: "Publishing Agreement", Verified: true, URL: "#"},
				{Name: "Royalty Distribution Contract", Verified: true, URL: "#"},
			},
			Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
				{Owner: "Neon Records", TxHash: "6JKq5YL0d5xT7aoyCeXeIFHTUd9yg3hgPuxA8pfGgPup", Date: "2024-03-01"},
				{Owner: "Producer: Sarah Kim", TxHash: "1Le4m0RJJRuJPpUui7wLmdJlTSqNxhjEzDrFkXexJYs", Date: "2024-02-15"},
			}},
			PriceHistory: []domain.PricePoint{
				{Date: "2024-02", Price: 0.65},
				{Date: "2024-03", Price: 0.7},
				{Date: "2024-04", Price: 0.75},
				{Date: "2024-05", Price: 0.8},
			},
			Attributes: map[string]string{
				"artist":      "Sarah Kim",
				"genre":       "Synthwave/Electronic",
				"duration":    "48 minutes",
				"tracks":      "12",
				"releaseDate": "2024-02-15",
			},
		},
		{
			ID:                 "gaming-1",
			Title:              "Legendary Sword of Flames",
			Description:        "Ultra-rare legendary weapon from the popular MMORPG 'Realm of Legends'. Unique stats and visual effects.",
			Category:           domain.CategoryGaming,
			Location:           "Realm of Legends",
			Images:             []string{"/legendary-flaming-sword-game-weapon.jpg", "/sword-weapon-stats-interface.jpg"},
			TotalSupply:        10000,
			AvailableTokens:    7500,
			TotalValue:         50000,
			MinimumInvestment:  100,
			OnChainMint:        "3UgCxGUgdvMjRBzPdgNvMaGqwQrNkn5tzPiAr4sAsVmq",
			OracleValuationUSD: 50000,
			Highlights:         []string{},
			Documents:          []domain.Document{},
			Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
				{Owner: "GameFi Vault", TxHash: "7HLr6ZM1e6yU8bpzIdYdJGITVe0zh4ihQvyB9qgHhQvq", Date: "2024-02-20"},
				{Owner: "Player: DragonSlayer99", TxHash: "5Nf5n1SKKSvKQqVvj8xMneLmUTrOyikFzEsGlYfyKZt", Date: "2024-01-10"},
			}},
			PriceHistory: []domain.PricePoint{{Date: "2024-05", Price: 5}},
			Attributes:   map[string]string{"game": "Realm of Legends", "rarity": "Legendary"},
		},
		{
			ID:                 "real-estate-2",
			Title:              "Beachfront Villa in Malibu",
			Description:        "Stunning oceanfront property with private beach access, infinity pool, and panoramic Pacific Ocean views.",
			Category:           domain.CategoryRealEstate,
			Location:           "Malibu, California",
			Images:             []string{"/malibu-beachfront-villa-exterior.jpg", "/villa-infinity-pool-ocean-view.jpg"},
			Panorama360:        strPtr("/360-villa-tour-ocean-view.jpg"),
			TotalSupply:        2000000,
			AvailableTokens:    1200000,
			TotalValue:         5500000,
			MinimumInvestment:  100,
			KYCRequired:        true,
			OnChainMint:        "8XmYuh3CX98e8TbOKqEeKGJTWd0zi5jkRwzC0rjHjWXr",
			OracleValuationUSD: 5500000,
			Highlights:         []string{},
			Documents:          []domain.Document{},
			Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
				{Owner: "Coastal Properties Group", TxHash: "9GKs7YN2f7zV9cqzJfZfKHKUWf1aj6kjSwyD0sjKkSwz", Date: "2024-01-25"},
			}},
			PriceHistory: []domain.PricePoint{{Date: "2024-05", Price: 2.75}},
			Attributes:   map[string]string{},
		},
		{
			ID:                 "art-2",
			Title:              "Abstract Geometry Collection",
			Description:        "Series of 5 abstract geometric paintings exploring the intersection of mathematics and visual art.",
			Category:           domain.CategoryArt,
			Location:           "Modern Art Gallery",
			Images:             []string{"/abstract-geometric-art-colorful.jpg", "/geometric-patterns-mathematical-art.jpg"},
			TotalSupply:        250000,
			AvailableTokens:    180000,
			TotalValue:         150000,
			MinimumInvestment:  100,
			OnChainMint:        "6WaFvh4DY09f9UcRLqGgLHLUXe2bk7lkTxzE1tkLlYXs",
			OracleValuationUSD: 150000,
			Highlights:         []string{},
			Documents:          []domain.Document{},
			Provenance: domain.Provenance{OwnerHistory: []domain.OwnershipRecord{
				{Owner: "Modern Art Gallery", TxHash: "4HMs8ZO3g8aW0drzKgagMILVYg2cl8mjUxzF2ulMmYxt", Date: "2024-02-28"},
			}},
			PriceHistory: []domain.PricePoint{{Date: "2024-05", Price: 0.6}},
			Attributes:   map[string]string{"pieces": "5"},
		},
	}

	for _, a := range assets {
		a.CreatedAt = seedListedAt
		a.UpdatedAt = seedListedAt
	}
	return assets
}
