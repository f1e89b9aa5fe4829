package rest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rwa-market/asset-catalog/internal/api/shared/constants"
	apierrors "github.com/rwa-market/asset-catalog/internal/api/shared/errors"
	"github.com/rwa-market/asset-catalog/internal/domain"
)

// ListAssetsQueryParams holds query parameters for GET /assets.
// Prices stay strings until Filter so that malformed numbers can be reported.
type ListAssetsQueryParams struct {
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
	Search   string `form:"search"`
}

// ParseListAssetsQuery parses query parameters for GET /assets
func ParseListAssetsQuery(c *gin.Context) (*ListAssetsQueryParams, error) {
	var params ListAssetsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Category = strings.TrimSpace(params.Category)
	params.MinPrice = strings.TrimSpace(params.MinPrice)
	params.MaxPrice = strings.TrimSpace(params.MaxPrice)

	return &params, nil
}

// Filter validates the parameters and converts them to a catalog filter
func (p *ListAssetsQueryParams) Filter() (domain.AssetFilter, error) {
	var filter domain.AssetFilter

	if p.Category != "" && p.Category != string(domain.CategoryAll) {
		category, ok := domain.ParseCategory(p.Category)
		if !ok {
			return filter, apierrors.NewValidationError("category", fmt.Sprintf("unknown category: %s", p.Category))
		}
		filter.Category = category
	}

	minPrice, err := parsePrice("minPrice", p.MinPrice)
	if err != nil {
		return filter, err
	}
	maxPrice, err := parsePrice("maxPrice", p.MaxPrice)
	if err != nil {
		return filter, err
	}
	filter.MinPrice = minPrice
	filter.MaxPrice = maxPrice

	if len(p.Search) > constants.MAX_SEARCH_LENGTH {
		return filter, apierrors.NewValidationError("search", fmt.Sprintf("search must be at most %d characters", constants.MAX_SEARCH_LENGTH))
	}
	filter.Search = p.Search

	return filter, nil
}

// parsePrice parses an optional decimal price bound
func parsePrice(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, apierrors.NewValidationError(field, fmt.Sprintf("%s must be a decimal number", field))
	}
	return &price, nil
}

// PricesQueryParams holds query parameters for GET /oracle/prices
type PricesQueryParams struct {
	Symbols []string `form:"symbols"`
}

// ParsePricesQuery parses query parameters for GET /oracle/prices.
// Symbols may be repeated or comma separated.
func ParsePricesQuery(c *gin.Context) (*PricesQueryParams, error) {
	var params PricesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	var symbols []string
	for _, s := range params.Symbols {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				symbols = append(symbols, part)
			}
		}
	}
	params.Symbols = symbols

	if len(params.Symbols) > constants.MAX_PRICE_SYMBOLS {
		return nil, apierrors.NewValidationError("symbols", fmt.Sprintf("maximum %d symbols allowed", constants.MAX_PRICE_SYMBOLS))
	}

	return &params, nil
}
