package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/rwa-market/asset-catalog/internal/adapter"
	"github.com/rwa-market/asset-catalog/internal/domain"
	"github.com/rwa-market/asset-catalog/internal/logger"
	"github.com/rwa-market/asset-catalog/internal/messaging"
	"github.com/rwa-market/asset-catalog/internal/store"
)

// maxIDAttempts bounds the id regeneration loop on collision
const maxIDAttempts = 3

// Service is the asset catalog: fixed seed listings plus user-created assets
//
//go:generate mockgen -source=service.go -destination=../mocks/catalog_service.go -package=mocks -mock_names=Service=MockCatalogService
type Service interface {
	// ListAssets returns seed assets then created assets, filtered conjunctively
	ListAssets(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error)
	// GetAsset looks up the seed set first, then the store
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	// CreateAsset validates the input and lists a new asset
	CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error)
	// GetEditableAsset returns the editable fields of an asset
	GetEditableAsset(ctx context.Context, id string) (*EditableAsset, error)
	// EditAsset applies a patch, seed assets only get a preview
	EditAsset(ctx context.Context, id string, input EditAssetInput) (*EditResult, error)
	// Invest records a simulated token purchase
	Invest(ctx context.Context, id string, input InvestInput) (*InvestResult, error)
}

// Option configures the service
type Option func(*service)

// WithIDGenerator replaces the UUID generator used for created assets
func WithIDGenerator(fn func() string) Option {
	return func(s *service) {
		s.newID = fn
	}
}

type service struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	newID     func() string

	seeds     []*domain.Asset
	seedIndex map[string]*domain.Asset
}

// NewService creates a catalog service over the given store
func NewService(st store.Store, publisher messaging.Publisher, clock adapter.Clock, opts ...Option) Service {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	seeds := seedAssets()
	seedIndex := make(map[string]*domain.Asset, len(seeds))
	for _, a := range seeds {
		seedIndex[a.ID] = a
	}

	s := &service{
		store:     st,
		publisher: publisher,
		clock:     clock,
		newID:     uuid.NewString,
		seeds:     seeds,
		seedIndex: seedIndex,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAssets returns the filtered union of seed and created assets
func (s *service) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	if filter.Category != "" && filter.Category != domain.CategoryAll && !domain.IsValidCategory(filter.Category) {
		return nil, domain.NewInvalidFieldError("category", "unknown category: "+string(filter.Category))
	}
	if filter.MinPrice != nil && (math.IsNaN(*filter.MinPrice) || math.IsInf(*filter.MinPrice, 0)) {
		return nil, domain.NewInvalidFieldError("minPrice", "minPrice must be a finite number")
	}
	if filter.MaxPrice != nil && (math.IsNaN(*filter.MaxPrice) || math.IsInf(*filter.MaxPrice, 0)) {
		return nil, domain.NewInvalidFieldError("maxPrice", "maxPrice must be a finite number")
	}

	created, err := s.store.ListAssets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list created assets: %w", err)
	}

	result := make([]*domain.Asset, 0, len(s.seeds)+len(created))
	for _, a := range domain.FilterAssets(s.seeds, filter) {
		result = append(result, a.Clone())
	}
	result = append(result, created...)

	return result, nil
}

// GetAsset returns a single asset
func (s *service) GetAsset(ctx context.Context, id string) (*domain.Asset, error) {
	if seed, ok := s.seedIndex[id]; ok {
		return seed.Clone(), nil
	}

	asset, err := s.store.GetAsset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if asset == nil {
		return nil, &domain.NotFoundError{ID: id}
	}

	return asset, nil
}

// CreateAsset lists a new user-created asset
func (s *service) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.newID()
		if _, ok := s.seedIndex[id]; ok {
			continue
		}

		asset, err := s.buildAsset(id, category, input, now)
		if err != nil {
			return nil, err
		}

		err = s.store.CreateAsset(ctx, asset)
		if errors.Is(err, store.ErrAssetAlreadyExists) {
			logger.WarnCtx(ctx, "Asset id collision, regenerating", zap.String("assetID", id))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create asset: %w", err)
		}

		logger.InfoCtx(ctx, "Asset created",
			zap.String("assetID", asset.ID),
			zap.String("category", string(asset.Category)),
			zap.Float64("pricePerToken", asset.PricePerToken()),
		)
		s.publish(ctx, domain.AssetEventCreated, asset, 0, asset.Provenance.OwnerHistory[0].TxHash)

		return asset, nil
	}

	return nil, fmt.Errorf("failed to allocate a unique asset id after %d attempts", maxIDAttempts)
}

func (s *service) buildAsset(id string, category domain.Category, input CreateAssetInput, now time.Time) (*domain.Asset, error) {
	owner := strings.TrimSpace(input.Owner)
	if owner == "" {
		owner = domain.DEFAULT_OWNER
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = domain.DEFAULT_LOCATION
	}
	minimumInvestment := input.MinimumInvestment
	if minimumInvestment == 0 {
		minimumInvestment = domain.DEFAULT_MINIMUM_INVESTMENT
	}
	highlights := input.Highlights
	if highlights == nil {
		highlights = domain.DefaultHighlights()
	}

	mint, err := simulatedHash(domain.MINT_PREFIX, mintRecord{
		AssetID:     id,
		Title:       strings.TrimSpace(input.Title),
		Category:    string(category),
		TotalSupply: input.TokenSupply,
		TotalValue:  input.TotalValue,
		CreatedAt:   now.Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	txHash, err := simulatedHash(domain.TX_HASH_PREFIX, transferRecord{
		Kind:    "create",
		AssetID: id,
		Owner:   owner,
		Tokens:  input.TokenSupply,
		Nonce:   mint,
	})
	if err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		ID:                 id,
		Title:              strings.TrimSpace(input.Title),
		Description:        strings.TrimSpace(input.Description),
		Category:           category,
		Location:           location,
		Images:             nonNilStrings(input.Images),
		Audio:              emptyToNil(input.Audio),
		Panorama360:        emptyToNil(input.Panorama360),
		TotalSupply:        input.TokenSupply,
		AvailableTokens:    input.TokenSupply,
		TotalValue:         input.TotalValue,
		ExpectedYield:      input.ExpectedYield,
		MinimumInvestment:  minimumInvestment,
		KYCRequired:        input.KYCRequired,
		OnChainMint:        mint,
		OracleValuationUSD: input.TotalValue,
		MonthlyRevenue:     input.MonthlyRevenue,
		OperatingExpenses:  input.OperatingExpenses,
		Highlights:         highlights,
		Documents:          input.Documents,
		Attributes:         input.Attributes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if asset.Documents == nil {
		asset.Documents = []domain.Document{}
	}
	if asset.Attributes == nil {
		asset.Attributes = map[string]string{}
	}
	asset.PriceHistory = []domain.PricePoint{{
		Date:  now.Format(domain.PRICE_HISTORY_DATE_LAYOUT),
		Price: asset.PricePerToken(),
	}}
	asset.Provenance.OwnerHistory = []domain.OwnershipRecord{{
		Owner:  owner,
		TxHash: txHash,
		Date:   now.Format(domain.OWNER_HISTORY_DATE_LAYOUT),
	}}

	return asset, nil
}

// GetEditableAsset returns the fields an edit form is pre-filled with
func (s *service) GetEditableAsset(ctx context.Context, id string) (*EditableAsset, error) {
	asset, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EditableAsset{
		ID:                asset.ID,
		Title:             asset.Title,
		Description:       asset.Description,
		Location:          asset.Location,
		AssetType:         asset.Category,
		TotalValue:        asset.TotalValue,
		TokenSupply:       asset.TotalSupply,
		ExpectedYield:     asset.ExpectedYield,
		MinimumInvestment: asset.MinimumInvestment,
		KYCRequired:       asset.KYCRequired,
		Images:            nonNilStrings(asset.Images),
		Audio:             asset.Audio,
		Panorama360:       asset.Panorama360,
		Highlights:        nonNilStrings(asset.Highlights),
	}, nil
}

// EditAsset applies the patch. Created assets are updated atomically, seed assets
// are read-only and only get a preview of the merged result.
func (s *service) EditAsset(ctx context.Context, id string, input EditAssetInput) (*EditResult, error) {
	category, err := input.validate()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	if seed, ok := s.seedIndex[id]; ok {
		preview := seed.Clone()
		if err := applyEdit(preview, input, category, now); err != nil {
			return nil, err
		}
		return &EditResult{Asset: preview, Persisted: false}, nil
	}

	updated, err := s.store.UpdateAsset(ctx, id, func(a *domain.Asset) error {
		return applyEdit(a, input, category, now)
	})
	if err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			return nil, &domain.NotFoundError{ID: id}
		}
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr
		}
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	logger.InfoCtx(ctx, "Asset updated", zap.String("assetID", id))
	s.publish(ctx, domain.AssetEventUpdated, updated, 0, "")

	return &EditResult{Asset: updated, Persisted: true}, nil
}

// applyEdit merges the patch into the asset, keeping the tokens already sold
func applyEdit(a *domain.Asset, input EditAssetInput, category domain.Category, now time.Time) error {
	sold := a.SoldTokens()
	if input.TokenSupply < sold {
		return domain.NewInvalidFieldError("tokenSupply",
			fmt.Sprintf("tokenSupply cannot be lower than the %d tokens already sold", sold))
	}

	oldPrice := a.PricePerToken()

	a.Title = strings.TrimSpace(input.Title)
	a.Description = strings.TrimSpace(input.Description)
	a.TotalValue = input.TotalValue
	a.TotalSupply = input.TokenSupply
	a.AvailableTokens = input.TokenSupply - sold

	if category != "" {
		a.Category = category
	}
	if input.Location != nil {
		a.Location = strings.TrimSpace(*input.Location)
		if a.Location == "" {
			a.Location = domain.DEFAULT_LOCATION
		}
	}
	if input.ExpectedYield != nil {
		a.ExpectedYield = *input.ExpectedYield
	}
	if input.MinimumInvestment != nil {
		a.MinimumInvestment = *input.MinimumInvestment
		if a.MinimumInvestment == 0 {
			a.MinimumInvestment = domain.DEFAULT_MINIMUM_INVESTMENT
		}
	}
	if input.KYCRequired != nil {
		a.KYCRequired = *input.KYCRequired
	}
	if input.Images != nil {
		a.Images = slices.Clone(input.Images)
	}
	if input.Audio != nil {
		a.Audio = emptyToNil(input.Audio)
	}
	if input.Panorama360 != nil {
		a.Panorama360 = emptyToNil(input.Panorama360)
	}
	if input.Highlights != nil {
		a.Highlights = slices.Clone(input.Highlights)
	}

	if newPrice := a.PricePerToken(); newPrice != oldPrice {
		a.PriceHistory = append(a.PriceHistory, domain.PricePoint{
			Date:  now.Format(domain.PRICE_HISTORY_DATE_LAYOUT),
			Price: newPrice,
		})
	}
	a.UpdatedAt = now

	return nil
}

// Invest sells tokens of a created asset to an investor
func (s *service) Invest(ctx context.Context, id string, input InvestInput) (*InvestResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if _, ok := s.seedIndex[id]; ok {
		return nil, domain.NewInvalidFieldError("id", "seed asset "+id+" is read-only and cannot be invested in")
	}

	now := s.clock.Now()
	investor := strings.TrimSpace(input.Investor)
	nonce := s.newEventID(now)

	txHash, err := simulatedHash(domain.TX_HASH_PREFIX, transferRecord{
		Kind:    "invest",
		AssetID: id,
		Owner:   investor,
		Tokens:  input.Tokens,
		Nonce:   nonce,
	})
	if err != nil {
		return nil, err
	}

	var amount float64
	updated, err := s.store.UpdateAsset(ctx, id, func(a *domain.Asset) error {
		if input.Tokens > a.AvailableTokens {
			return domain.NewInvalidFieldError("tokens",
				fmt.Sprintf("only %d tokens are available", a.AvailableTokens))
		}

		amount = float64(input.Tokens) * a.PricePerToken()
		if amount < a.MinimumInvestment {
			return domain.NewInvalidFieldError("tokens",
				fmt.Sprintf("investment of %.2f USD is below the minimum of %.2f USD", amount, a.MinimumInvestment))
		}
		if a.KYCRequired && !input.KYCVerified {
			return domain.NewInvalidFieldError("kycVerified", "asset requires KYC verification")
		}

		a.AvailableTokens -= input.Tokens
		a.Investors++
		a.Provenance.OwnerHistory = append(a.Provenance.OwnerHistory, domain.OwnershipRecord{
			Owner:  investor,
			TxHash: txHash,
			Date:   now.Format(domain.OWNER_HISTORY_DATE_LAYOUT),
		})
		a.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			return nil, &domain.NotFoundError{ID: id}
		}
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr
		}
		return nil, fmt.Errorf("failed to record investment: %w", err)
	}

	logger.InfoCtx(ctx, "Investment recorded",
		zap.String("assetID", id),
		zap.Int64("tokens", input.Tokens),
		zap.Float64("amount", amount),
	)
	s.publish(ctx, domain.AssetEventInvested, updated, input.Tokens, txHash)

	return &InvestResult{
		Asset:  updated,
		TxHash: txHash,
		Tokens: input.Tokens,
		Amount: amount,
	}, nil
}

// publish emits an asset event, failures are logged and never fail the operation
func (s *service) publish(ctx context.Context, eventType domain.AssetEventType, asset *domain.Asset, tokens int64, txHash string) {
	now := s.clock.Now()
	event := &domain.AssetEvent{
		EventID:         s.newEventID(now),
		Type:            eventType,
		AssetID:         asset.ID,
		Category:        asset.Category,
		PricePerToken:   asset.PricePerToken(),
		AvailableTokens: asset.AvailableTokens,
		Tokens:          tokens,
		TxHash:          txHash,
		Timestamp:       now,
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to publish asset event: %w", err),
			zap.String("eventType", string(eventType)),
			zap.String("assetID", asset.ID),
		)
	}
}

func (s *service) newEventID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
