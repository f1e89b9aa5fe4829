package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwa-market/asset-catalog/internal/api/rest"
	"github.com/rwa-market/asset-catalog/internal/catalog"
	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/mocks"
	"github.com/rwa-market/asset-catalog/internal/oracle"
)

type testHandler struct {
	router   *gin.Engine
	catalog  *mocks.MockCatalogService
	valuator *mocks.MockValuator
	feed     *mocks.MockPriceFeed
}

func newTestHandler(t *testing.T) *testHandler {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	th := &testHandler{
		router:   gin.New(),
		catalog:  mocks.NewMockCatalogService(ctrl),
		valuator: mocks.NewMockValuator(ctrl),
		feed:     mocks.NewMockPriceFeed(ctrl),
	}
	rest.SetupRoutes(th.router, rest.NewHandler(th.catalog, th.valuator, th.feed))
	return th
}

func (th *testHandler) do(method, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	th.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
		Field   string `json:"field"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func testAsset() *domain.Asset {
	return &domain.Asset{
		ID:                 "asset-1",
		Title:              "T",
		Description:        "D",
		Category:           domain.CategoryArt,
		Location:           domain.DEFAULT_LOCATION,
		TotalSupply:        100,
		AvailableTokens:    80,
		TotalValue:         1000,
		ExpectedYield:      5,
		MinimumInvestment:  100,
		MonthlyRevenue:     300,
		OperatingExpenses:  100,
		OracleValuationUSD: 1000,
		CreatedAt:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestHealthCheck(t *testing.T) {
	th := newTestHandler(t)

	w := th.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListAssets_PassesFilter(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		ListAssets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
			assert.Equal(t, domain.CategoryArt, filter.Category)
			require.NotNil(t, filter.MinPrice)
			require.NotNil(t, filter.MaxPrice)
			assert.Equal(t, 1.0, *filter.MinPrice)
			assert.Equal(t, 2.5, *filter.MaxPrice)
			assert.Equal(t, "Manhattan", filter.Search)
			return []*domain.Asset{testAsset()}, nil
		})

	w := th.do(http.MethodGet, "/api/v1/assets?category=art&minPrice=1&maxPrice=2.5&search=Manhattan", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "asset-1", body[0]["id"])
}

func TestListAssets_AllCategoryMeansNoFilter(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		ListAssets(gomock.Any(), domain.AssetFilter{}).
		Return([]*domain.Asset{}, nil)

	w := th.do(http.MethodGet, "/api/v1/assets?category=all", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListAssets_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"non numeric min price", "minPrice=abc", "minPrice"},
		{"non numeric max price", "maxPrice=1e", "maxPrice"},
		{"infinite price", "maxPrice=Inf", "maxPrice"},
		{"unknown category", "category=boats", "category"},
		{"search too long", "search=" + strings.Repeat("a", 201), "search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)

			w := th.do(http.MethodGet, "/api/v1/assets?"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)

			body := decodeError(t, w)
			assert.Equal(t, "validation_failed", body.Error.Code)
			assert.Equal(t, tt.field, body.Error.Field)
		})
	}
}

func TestListAssets_InternalError(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().ListAssets(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	w := th.do(http.MethodGet, "/api/v1/assets", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestGetAsset_Aliases(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().GetAsset(gomock.Any(), "asset-1").Return(testAsset(), nil)

	w := th.do(http.MethodGet, "/api/v1/assets/asset-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "art", body["type"])
	assert.Equal(t, "art", body["category"])
	assert.Equal(t, 100.0, body["totalSupply"])
	assert.Equal(t, 100.0, body["tokenSupply"])
	assert.Equal(t, 80.0, body["availableTokens"])
	assert.Equal(t, 80.0, body["fractionsAvailable"])
	assert.Equal(t, 10.0, body["pricePerToken"])
	assert.Equal(t, 10.0, body["pricePerFraction"])
	assert.Equal(t, 5.0, body["expectedYield"])
	assert.Equal(t, 5.0, body["annualYield"])
	assert.Equal(t, 200.0, body["netIncome"])
	assert.Equal(t, []interface{}{}, body["images"])
	assert.Nil(t, body["audio"])
}

func TestGetAsset_NotFound(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		GetAsset(gomock.Any(), "nonexistent-id").
		Return(nil, &domain.NotFoundError{ID: "nonexistent-id"})

	w := th.do(http.MethodGet, "/api/v1/assets/nonexistent-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "nonexistent-id", body.Error.Details)
}

func TestCreateAsset(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		CreateAsset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.CreateAssetInput) (*domain.Asset, error) {
			assert.Equal(t, "T", input.Title)
			assert.Equal(t, "art", input.AssetType)
			assert.Equal(t, 1000.0, input.TotalValue)
			assert.Equal(t, int64(100), input.TokenSupply)
			assert.Nil(t, input.Highlights)
			return testAsset(), nil
		})

	w := th.do(http.MethodPost, "/api/v1/assets",
		`{"title":"T","description":"D","assetType":"art","totalValue":1000,"tokenSupply":100}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool                   `json:"success"`
		Asset   map[string]interface{} `json:"asset"`
		Message string                 `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "asset-1", body.Asset["id"])
	assert.Equal(t, "Asset created successfully", body.Message)
}

func TestCreateAsset_ValidationError(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		CreateAsset(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewMissingFieldError("description"))

	w := th.do(http.MethodPost, "/api/v1/assets", `{"title":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "validation_failed", body.Error.Code)
	assert.Equal(t, "description", body.Error.Field)
	assert.Equal(t, "missing required field: description", body.Error.Details)
}

func TestCreateAsset_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `title=X`},
		{"fractional supply", `{"title":"T","description":"D","assetType":"art","totalValue":1000,"tokenSupply":1.5}`},
		{"string value", `{"title":"T","totalValue":"1000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)

			w := th.do(http.MethodPost, "/api/v1/assets", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "bad_request", decodeError(t, w).Error.Code)
		})
	}
}

func TestCreateAsset_RequestLimits(t *testing.T) {
	th := newTestHandler(t)

	images := make([]string, 21)
	for i := range images {
		images[i] = "/img.jpg"
	}
	payload, err := json.Marshal(map[string]interface{}{
		"title": "T", "description": "D", "assetType": "art", "totalValue": 1, "tokenSupply": 1,
		"images": images,
	})
	require.NoError(t, err)

	w := th.do(http.MethodPost, "/api/v1/assets", string(payload))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "images", decodeError(t, w).Error.Field)
}

func TestGetEditableAsset(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().GetEditableAsset(gomock.Any(), "asset-1").Return(&catalog.EditableAsset{
		ID:          "asset-1",
		Title:       "T",
		AssetType:   domain.CategoryArt,
		TotalValue:  1000,
		TokenSupply: 100,
	}, nil)

	w := th.do(http.MethodGet, "/api/v1/assets/asset-1/edit", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "art", body["assetType"])
	assert.Equal(t, 100.0, body["tokenSupply"])
	assert.Equal(t, []interface{}{}, body["highlights"])
}

func TestEditAsset(t *testing.T) {
	for _, path := range []string{"/api/v1/assets/asset-1", "/api/v1/assets/asset-1/edit"} {
		t.Run(path, func(t *testing.T) {
			th := newTestHandler(t)

			th.catalog.EXPECT().
				EditAsset(gomock.Any(), "asset-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, input catalog.EditAssetInput) (*catalog.EditResult, error) {
					assert.Equal(t, "New", input.Title)
					require.NotNil(t, input.KYCRequired)
					assert.True(t, *input.KYCRequired)
					assert.Nil(t, input.Location)
					return &catalog.EditResult{Asset: testAsset(), Persisted: true}, nil
				})

			w := th.do(http.MethodPut, path,
				`{"title":"New","description":"D","totalValue":1000,"tokenSupply":100,"kycRequired":true}`)
			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, true, body["success"])
			assert.Equal(t, true, body["persisted"])
		})
	}
}

func TestEditAsset_Preview(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		EditAsset(gomock.Any(), "art-1", gomock.Any()).
		Return(&catalog.EditResult{Asset: testAsset(), Persisted: false}, nil)

	w := th.do(http.MethodPut, "/api/v1/assets/art-1",
		`{"title":"New","description":"D","totalValue":1000,"tokenSupply":100}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"persisted":false`)
	assert.Contains(t, w.Body.String(), "read-only")
}

func TestInvest(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		Invest(gomock.Any(), "asset-1", catalog.InvestInput{Investor: "alice", Tokens: 10, KYCVerified: true}).
		Return(&catalog.InvestResult{Asset: testAsset(), TxHash: "sim_tx_abc", Tokens: 10, Amount: 100}, nil)

	w := th.do(http.MethodPost, "/api/v1/assets/asset-1/investments",
		`{"investor":"alice","tokens":10,"kycVerified":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "sim_tx_abc", body["txHash"])
	assert.Equal(t, 100.0, body["amount"])
}

func TestInvest_ValidationError(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().
		Invest(gomock.Any(), "asset-1", gomock.Any()).
		Return(nil, domain.NewInvalidFieldError("kycVerified", "asset requires KYC verification"))

	w := th.do(http.MethodPost, "/api/v1/assets/asset-1/investments", `{"investor":"alice","tokens":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "kycVerified", decodeError(t, w).Error.Field)
}

func TestGetValuation(t *testing.T) {
	th := newTestHandler(t)
	asset := testAsset()

	th.catalog.EXPECT().GetAsset(gomock.Any(), "asset-1").Return(asset, nil)
	th.valuator.EXPECT().Valuate(gomock.Any(), asset).Return(&oracle.Valuation{
		AssetID:        "asset-1",
		CurrentValue:   1000,
		EstimatedValue: 1050,
		Confidence:     0.85,
	}, nil)

	w := th.do(http.MethodGet, "/api/v1/assets/asset-1/valuation", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1050.0, body["estimatedValue"])
	assert.Equal(t, 0.85, body["confidence"])
}

func TestGetValuation_NotFound(t *testing.T) {
	th := newTestHandler(t)

	th.catalog.EXPECT().GetAsset(gomock.Any(), "missing").Return(nil, &domain.NotFoundError{ID: "missing"})

	w := th.do(http.MethodGet, "/api/v1/assets/missing/valuation", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMarketSummary(t *testing.T) {
	th := newTestHandler(t)
	assets := []*domain.Asset{testAsset()}

	th.catalog.EXPECT().ListAssets(gomock.Any(), domain.AssetFilter{}).Return(assets, nil)
	th.valuator.EXPECT().MarketSummary(gomock.Any(), assets).Return(&oracle.MarketSummary{
		TotalMarketCap: 1000,
		ActiveAssets:   1,
	}, nil)

	w := th.do(http.MethodGet, "/api/v1/market", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalMarketCap":1000`)
}

func TestGetPrices(t *testing.T) {
	th := newTestHandler(t)

	th.feed.EXPECT().
		GetPrices(gomock.Any(), []string{"solana", "bitcoin", "usd-coin"}).
		Return([]oracle.Quote{{Symbol: "solana", Price: 98.45}}, nil)

	w := th.do(http.MethodGet, "/api/v1/oracle/prices?symbols=solana,bitcoin&symbols=usd-coin", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":98.45`)
}

func TestGetPrices_DefaultSymbols(t *testing.T) {
	th := newTestHandler(t)

	th.feed.EXPECT().GetPrices(gomock.Any(), oracle.DefaultSymbols).Return([]oracle.Quote{}, nil)

	w := th.do(http.MethodGet, "/api/v1/oracle/prices", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"prices":[]}`, w.Body.String())
}

func TestGetPrices_TooManySymbols(t *testing.T) {
	th := newTestHandler(t)

	w := th.do(http.MethodGet, "/api/v1/oracle/prices?symbols=a,b,c,d,e,f,g,h,i,j,k", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "symbols", decodeError(t, w).Error.Field)
}
