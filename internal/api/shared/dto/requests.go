package dto

import (
	"fmt"

	"github.com/rwa-market/asset-catalog/internal/api/shared/constants"
	apierrors "github.com/rwa-market/asset-catalog/internal/api/shared/errors"
	"github.com/rwa-market/asset-catalog/internal/catalog"
	"github.com/rwa-market/asset-catalog/internal/domain"
)

// DocumentRequest is a supporting document in a create request
type DocumentRequest struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	URL      string `json:"url"`
}

// CreateAssetRequest represents the request body for listing a new asset.
// Required fields are checked by the catalog, Validate only enforces size limits.
type CreateAssetRequest struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	AssetType         string            `json:"assetType"`
	TotalValue        float64           `json:"totalValue"`
	TokenSupply       int64             `json:"tokenSupply"`
	Location          string            `json:"location,omitempty"`
	Images            []string          `json:"images,omitempty"`
	Audio             *string           `json:"audio,omitempty"`
	Panorama360       *string           `json:"panorama360,omitempty"`
	ExpectedYield     float64           `json:"expectedYield,omitempty"`
	MinimumInvestment float64           `json:"minimumInvestment,omitempty"`
	KYCRequired       bool              `json:"kycRequired,omitempty"`
	MonthlyRevenue    float64           `json:"monthlyRevenue,omitempty"`
	OperatingExpenses float64           `json:"operatingExpenses,omitempty"`
	Highlights        []string          `json:"highlights,omitempty"`
	Documents         []DocumentRequest `json:"documents,omitempty"`
	Owner             string            `json:"owner,omitempty"`
	Attributes        map[string]string `json:"attributes,omitempty"`
}

// Validate validates the request body
func (r *CreateAssetRequest) Validate() error {
	if err := validateText(r.Title, r.Description); err != nil {
		return err
	}
	if err := validateMedia(r.Images, r.Highlights); err != nil {
		return err
	}

	// Validate: maximum number of documents allowed
	if len(r.Documents) > constants.MAX_DOCUMENTS_PER_ASSET {
		return apierrors.NewValidationError("documents", fmt.Sprintf("maximum %d documents allowed", constants.MAX_DOCUMENTS_PER_ASSET))
	}

	// Validate: maximum number of attributes allowed
	if len(r.Attributes) > constants.MAX_ATTRIBUTES_PER_ASSET {
		return apierrors.NewValidationError("attributes", fmt.Sprintf("maximum %d attributes allowed", constants.MAX_ATTRIBUTES_PER_ASSET))
	}

	return nil
}

// ToInput converts the request to a catalog command
func (r *CreateAssetRequest) ToInput() catalog.CreateAssetInput {
	var documents []domain.Document
	if r.Documents != nil {
		documents = make([]domain.Document, 0, len(r.Documents))
		for _, d := range r.Documents {
			documents = append(documents, domain.Document{Name: d.Name, Verified: d.Verified, URL: d.URL})
		}
	}

	return catalog.CreateAssetInput{
		Title:             r.Title,
		Description:       r.Description,
		AssetType:         r.AssetType,
		TotalValue:        r.TotalValue,
		TokenSupply:       r.TokenSupply,
		Location:          r.Location,
		Images:            r.Images,
		Audio:             r.Audio,
		Panorama360:       r.Panorama360,
		ExpectedYield:     r.ExpectedYield,
		MinimumInvestment: r.MinimumInvestment,
		KYCRequired:       r.KYCRequired,
		MonthlyRevenue:    r.MonthlyRevenue,
		OperatingExpenses: r.OperatingExpenses,
		Highlights:        r.Highlights,
		Documents:         documents,
		Owner:             r.Owner,
		Attributes:        r.Attributes,
	}
}

// EditAssetRequest represents the request body for editing an asset.
// Omitted optional fields keep their current value.
type EditAssetRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TotalValue  float64 `json:"totalValue"`
	TokenSupply int64   `json:"tokenSupply"`

	AssetType         *string  `json:"assetType,omitempty"`
	Location          *string  `json:"location,omitempty"`
	ExpectedYield     *float64 `json:"expectedYield,omitempty"`
	MinimumInvestment *float64 `json:"minimumInvestment,omitempty"`
	KYCRequired       *bool    `json:"kycRequired,omitempty"`
	Images            []string `json:"images,omitempty"`
	Audio             *string  `json:"audio,omitempty"`
	Panorama360       *string  `json:"panorama360,omitempty"`
	Highlights        []string `json:"highlights,omitempty"`
}

// Validate validates the request body
func (r *EditAssetRequest) Validate() error {
	if err := validateText(r.Title, r.Description); err != nil {
		return err
	}
	return validateMedia(r.Images, r.Highlights)
}

// ToInput converts the request to a catalog command
func (r *EditAssetRequest) ToInput() catalog.EditAssetInput {
	return catalog.EditAssetInput{
		Title:             r.Title,
		Description:       r.Description,
		TotalValue:        r.TotalValue,
		TokenSupply:       r.TokenSupply,
		AssetType:         r.AssetType,
		Location:          r.Location,
		ExpectedYield:     r.ExpectedYield,
		MinimumInvestment: r.MinimumInvestment,
		KYCRequired:       r.KYCRequired,
		Images:            r.Images,
		Audio:             r.Audio,
		Panorama360:       r.Panorama360,
		Highlights:        r.Highlights,
	}
}

// InvestRequest represents the request body for a simulated token purchase
type InvestRequest struct {
	Investor    string `json:"investor"`
	Tokens      int64  `json:"tokens"`
	KYCVerified bool   `json:"kycVerified"`
}

// ToInput converts the request to a catalog command
func (r *InvestRequest) ToInput() catalog.InvestInput {
	return catalog.InvestInput{
		Investor:    r.Investor,
		Tokens:      r.Tokens,
		KYCVerified: r.KYCVerified,
	}
}

func validateText(title, description string) error {
	if len(title) > constants.MAX_TITLE_LENGTH {
		return apierrors.NewValidationError("title", fmt.Sprintf("title must be at most %d characters", constants.MAX_TITLE_LENGTH))
	}
	if len(description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError("description", fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	return nil
}

func validateMedia(images, highlights []string) error {
	if len(images) > constants.MAX_IMAGES_PER_ASSET {
		return apierrors.NewValidationError("images", fmt.Sprintf("maximum %d images allowed", constants.MAX_IMAGES_PER_ASSET))
	}
	if len(highlights) > constants.MAX_HIGHLIGHTS_PER_ASSET {
		return apierrors.NewValidationError("highlights", fmt.Sprintf("maximum %d highlights allowed", constants.MAX_HIGHLIGHTS_PER_ASSET))
	}
	return nil
}
