package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rwa-market/asset-catalog/internal/api/shared/dto"
	"github.com/rwa-market/asset-catalog/internal/catalog"
	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/oracle"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// ListAssets retrieves seed and created assets with optional filters
	// GET /api/v1/assets?category=<category|all>&minPrice=<decimal>&maxPrice=<decimal>&search=<text>
	ListAssets(c *gin.Context)

	// GetAsset retrieves a single asset by its ID
	// GET /api/v1/assets/:id
	GetAsset(c *gin.Context)

	// CreateAsset lists a new asset
	// POST /api/v1/assets
	CreateAsset(c *gin.Context)

	// GetEditableAsset retrieves the editable fields of an asset
	// GET /api/v1/assets/:id/edit
	GetEditableAsset(c *gin.Context)

	// EditAsset updates an asset, read-only assets only get a preview
	// PUT /api/v1/assets/:id
	EditAsset(c *gin.Context)

	// Invest records a simulated token purchase
	// POST /api/v1/assets/:id/investments
	Invest(c *gin.Context)

	// GetValuation retrieves the oracle valuation of an asset
	// GET /api/v1/assets/:id/valuation
	GetValuation(c *gin.Context)

	// GetMarketSummary aggregates the valuation of every listed asset
	// GET /api/v1/market
	GetMarketSummary(c *gin.Context)

	// GetPrices retrieves quote-currency prices
	// GET /api/v1/oracle/prices?symbols=<symbol1>,<symbol2>
	GetPrices(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	catalog  catalog.Service
	valuator oracle.Valuator
	feed     oracle.PriceFeed
}

// NewHandler creates a new REST API handler
func NewHandler(svc catalog.Service, valuator oracle.Valuator, feed oracle.PriceFeed) Handler {
	return &handler{
		catalog:  svc,
		valuator: valuator,
		feed:     feed,
	}
}

// ListAssets retrieves assets with optional filters
func (h *handler) ListAssets(c *gin.Context) {
	// Parse query parameters
	queryParams, err := ParseListAssetsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	// Validate and convert query parameters
	filter, err := queryParams.Filter()
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}

	assets, err := h.catalog.ListAssets(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetsToDTO(assets))
}

// GetAsset retrieves a single asset by its ID
func (h *handler) GetAsset(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Asset ID is required")
		return
	}

	asset, err := h.catalog.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get asset")
		return
	}

	c.JSON(http.StatusOK, dto.MapAssetToDTO(asset))
}

// CreateAsset lists a new asset
func (h *handler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}

	asset, err := h.catalog.CreateAsset(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateAssetResponse{
		Success: true,
		Asset:   dto.MapAssetToDTO(asset),
		Message: "Asset created successfully",
	})
}

// GetEditableAsset retrieves the editable fields of an asset
func (h *handler) GetEditableAsset(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Asset ID is required")
		return
	}

	editable, err := h.catalog.GetEditableAsset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get asset for editing")
		return
	}

	c.JSON(http.StatusOK, dto.MapEditableAssetToDTO(editable))
}

// EditAsset updates an asset
func (h *handler) EditAsset(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Asset ID is required")
		return
	}

	var req dto.EditAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}

	result, err := h.catalog.EditAsset(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}

	message := "Asset updated successfully"
	if !result.Persisted {
		message = "Asset is read-only, changes were not saved"
	}

	c.JSON(http.StatusOK, dto.EditAssetResponse{
		Success:   true,
		Asset:     dto.MapAssetToDTO(result.Asset),
		Message:   message,
		Persisted: result.Persisted,
	})
}

// Invest records a simulated token purchase
func (h *handler) Invest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Asset ID is required")
		return
	}

	var req dto.InvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.catalog.Invest(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, err, "Failed to record investment")
		return
	}

	c.JSON(http.StatusCreated, dto.InvestResponse{
		Success: true,
		Asset:   dto.MapAssetToDTO(result.Asset),
		TxHash:  result.TxHash,
		Tokens:  result.Tokens,
		Amount:  result.Amount,
		Message: fmt.Sprintf("Purchased %d tokens", result.Tokens),
	})
}

// GetValuation retrieves the oracle valuation of an asset
func (h *handler) GetValuation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Asset ID is required")
		return
	}

	asset, err := h.catalog.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get asset")
		return
	}

	valuation, err := h.valuator.Valuate(c.Request.Context(), asset)
	if err != nil {
		respondError(c, err, "Failed to valuate asset")
		return
	}

	c.JSON(http.StatusOK, valuation)
}

// GetMarketSummary aggregates the valuation of every listed asset
func (h *handler) GetMarketSummary(c *gin.Context) {
	assets, err := h.catalog.ListAssets(c.Request.Context(), domain.AssetFilter{})
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}

	summary, err := h.valuator.MarketSummary(c.Request.Context(), assets)
	if err != nil {
		respondError(c, err, "Failed to compute market summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetPrices retrieves quote-currency prices
func (h *handler) GetPrices(c *gin.Context) {
	queryParams, err := ParsePricesQuery(c)
	if err != nil {
		respondError(c, err, "Invalid query parameters")
		return
	}

	symbols := queryParams.Symbols
	if len(symbols) == 0 {
		symbols = oracle.DefaultSymbols
	}

	prices, err := h.feed.GetPrices(c.Request.Context(), symbols)
	if err != nil {
		respondError(c, err, "Failed to get prices")
		return
	}

	c.JSON(http.StatusOK, dto.PricesResponse{Prices: prices})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "asset-catalog-api",
	})
}
