package catalog

import (
	"math"
	"strings"

	"github.com/rwa-market/asset-catalog/internal/domain"
)

// CreateAssetInput is the command for listing a new asset.
// Zero values mean "not supplied".
type CreateAssetInput struct {
	Title             string
	Description       string
	AssetType         string
	TotalValue        float64
	TokenSupply       int64
	Location          string
	Images            []string
	Audio             *string
	Panorama360       *string
	ExpectedYield     float64
	MinimumInvestment float64
	KYCRequired       bool
	MonthlyRevenue    float64
	OperatingExpenses float64
	// Highlights nil means the default list, an empty non-nil slice is kept as is
	Highlights []string
	Documents  []domain.Document
	Owner      string
	Attributes map[string]string
}

// validate reports the first missing required field, then any invalid value
func (in CreateAssetInput) validate() (domain.Category, error) {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return "", domain.NewMissingFieldError("title")
	case strings.TrimSpace(in.Description) == "":
		return "", domain.NewMissingFieldError("description")
	case strings.TrimSpace(in.AssetType) == "":
		return "", domain.NewMissingFieldError("assetType")
	case in.TotalValue == 0:
		return "", domain.NewMissingFieldError("totalValue")
	case in.TokenSupply == 0:
		return "", domain.NewMissingFieldError("tokenSupply")
	}

	category, ok := domain.ParseCategory(in.AssetType)
	if !ok {
		return "", domain.NewInvalidFieldError("assetType", "unknown asset type: "+in.AssetType)
	}

	if err := validateAmounts(in.TotalValue, in.TokenSupply); err != nil {
		return "", err
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"expectedYield", in.ExpectedYield},
		{"minimumInvestment", in.MinimumInvestment},
		{"monthlyRevenue", in.MonthlyRevenue},
		{"operatingExpenses", in.OperatingExpenses},
	}
	for _, f := range nonNegative {
		if err := validateNonNegative(f.field, f.value); err != nil {
			return "", err
		}
	}

	return category, nil
}

// EditAssetInput is the patch applied by EditAsset.
// The first four fields are required, nil optional fields keep the current value.
type EditAssetInput struct {
	Title       string
	Description string
	TotalValue  float64
	TokenSupply int64

	AssetType         *string
	Location          *string
	ExpectedYield     *float64
	MinimumInvestment *float64
	KYCRequired       *bool
	Images            []string
	Audio             *string
	Panorama360       *string
	Highlights        []string
}

func (in EditAssetInput) validate() (domain.Category, error) {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return "", domain.NewMissingFieldError("title")
	case strings.TrimSpace(in.Description) == "":
		return "", domain.NewMissingFieldError("description")
	case in.TotalValue == 0:
		return "", domain.NewMissingFieldError("totalValue")
	case in.TokenSupply == 0:
		return "", domain.NewMissingFieldError("tokenSupply")
	}

	var category domain.Category
	if in.AssetType != nil && *in.AssetType != "" {
		var ok bool
		category, ok = domain.ParseCategory(*in.AssetType)
		if !ok {
			return "", domain.NewInvalidFieldError("assetType", "unknown asset type: "+*in.AssetType)
		}
	}

	if err := validateAmounts(in.TotalValue, in.TokenSupply); err != nil {
		return "", err
	}
	if in.ExpectedYield != nil {
		if err := validateNonNegative("expectedYield", *in.ExpectedYield); err != nil {
			return "", err
		}
	}
	if in.MinimumInvestment != nil {
		if err := validateNonNegative("minimumInvestment", *in.MinimumInvestment); err != nil {
			return "", err
		}
	}

	return category, nil
}

func validateAmounts(totalValue float64, tokenSupply int64) error {
	if !isFinite(totalValue) {
		return domain.NewInvalidFieldError("totalValue", "totalValue must be a finite number")
	}
	if totalValue < 0 {
		return domain.NewInvalidFieldError("totalValue", "totalValue must be positive")
	}
	if tokenSupply < 0 {
		return domain.NewInvalidFieldError("tokenSupply", "tokenSupply must be positive")
	}
	return nil
}

func validateNonNegative(field string, value float64) error {
	if !isFinite(value) {
		return domain.NewInvalidFieldError(field, field+" must be a finite number")
	}
	if value < 0 {
		return domain.NewInvalidFieldError(field, field+" must not be negative")
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// EditResult is the outcome of EditAsset.
// Persisted is false when the asset is a read-only seed listing and Asset is only a preview.
type EditResult struct {
	Asset     *domain.Asset
	Persisted bool
}

// EditableAsset is the subset of an asset that can be changed through EditAsset
type EditableAsset struct {
	ID                string
	Title             string
	Description       string
	Location          string
	AssetType         domain.Category
	TotalValue        float64
	TokenSupply       int64
	ExpectedYield     float64
	MinimumInvestment float64
	KYCRequired       bool
	Images            []string
	Audio             *string
	Panorama360       *string
	Highlights        []string
}

// InvestInput is a simulated token purchase
type InvestInput struct {
	Investor    string
	Tokens      int64
	KYCVerified bool
}

func (in InvestInput) validate() error {
	if strings.TrimSpace(in.Investor) == "" {
		return domain.NewMissingFieldError("investor")
	}
	if in.Tokens <= 0 {
		return domain.NewInvalidFieldError("tokens", "tokens must be positive")
	}
	return nil
}

// InvestResult is the outcome of a simulated token purchase
type InvestResult struct {
	Asset  *domain.Asset
	TxHash string
	Tokens int64
	Amount float64
}
