package oracle

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/rwa-market/asset-catalog/internal/adapter"
	"github.com/rwa-market/asset-catalog/internal/logger"
)

const (
	DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

	SymbolSolana  = "solana"
	SymbolUSDCoin = "usd-coin"
	SymbolBitcoin = "bitcoin"

	SourceCoinGecko = "coingecko"
	SourceFallback  = "fallback"

	vsCurrency = "usd"
)

// DefaultSymbols are quoted when the caller does not ask for specific ones
var DefaultSymbols = []string{SymbolSolana, SymbolUSDCoin}

// Quote is the USD market data of a quote currency
type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
	Volume24h float64 `json:"volume24h"`
	MarketCap float64 `json:"marketCap"`
	Source    string  `json:"source"`
}

// fallbackQuotes are served when the upstream feed is unreachable
var fallbackQuotes = map[string]Quote{
	SymbolSolana:  {Price: 98.45, Change24h: 3.2, Volume24h: 2100000000, MarketCap: 45000000000},
	SymbolUSDCoin: {Price: 1.0, Change24h: 0.01, Volume24h: 5200000000, MarketCap: 32000000000},
	SymbolBitcoin: {Price: 67890, Change24h: 1.8, Volume24h: 28000000000, MarketCap: 1340000000000},
}

// PriceFeed provides quote-currency prices
//
//go:generate mockgen -source=feed.go -destination=../mocks/price_feed.go -package=mocks -mock_names=PriceFeed=MockPriceFeed
type PriceFeed interface {
	// GetPrices returns one quote per symbol in the requested order.
	// Upstream failures are absorbed: affected symbols get fallback quotes.
	GetPrices(ctx context.Context, symbols []string) ([]Quote, error)
}

// FeedConfig configures the CoinGecko price feed
type FeedConfig struct {
	BaseURL string
	APIKey  string
}

type coinGeckoFeed struct {
	baseURL      string
	apiKey       string
	apiKeyHeader string
	httpClient   adapter.HTTPClient
}

// NewCoinGeckoFeed creates a price feed backed by the CoinGecko simple/price endpoint
func NewCoinGeckoFeed(cfg FeedConfig, httpClient adapter.HTTPClient) PriceFeed {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultCoinGeckoURL
	}

	header := "x-cg-demo-api-key"
	if strings.Contains(baseURL, "pro-api.coingecko.com") {
		header = "x-cg-pro-api-key"
	}

	return &coinGeckoFeed{
		baseURL:      baseURL,
		apiKey:       cfg.APIKey,
		apiKeyHeader: header,
		httpClient:   httpClient,
	}
}

// GetPrices fetches quotes from CoinGecko
func (f *coinGeckoFeed) GetPrices(ctx context.Context, symbols []string) ([]Quote, error) {
	ids := normalizeSymbols(symbols)
	if len(ids) == 0 {
		return []Quote{}, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", vsCurrency)
	query.Set("include_24hr_change", "true")
	query.Set("include_24hr_vol", "true")
	query.Set("include_market_cap", "true")
	endpoint := f.baseURL + "/simple/price?" + query.Encode()

	var headers map[string]string
	if f.apiKey != "" {
		headers = map[string]string{f.apiKeyHeader: f.apiKey}
	}

	var payload map[string]map[string]float64
	if err := f.httpClient.Get(ctx, endpoint, headers, &payload); err != nil {
		logger.WarnCtx(ctx, "Price feed unavailable, serving fallback quotes",
			zap.Error(err),
			zap.Strings("symbols", ids),
		)
		return fallbackPrices(ids), nil
	}

	quotes := make([]Quote, 0, len(ids))
	for _, id := range ids {
		values, ok := payload[id]
		if !ok {
			logger.DebugCtx(ctx, "Symbol missing from price feed response", zap.String("symbol", id))
			quotes = append(quotes, fallbackQuote(id))
			continue
		}

		quotes = append(quotes, Quote{
			Symbol:    id,
			Price:     values[vsCurrency],
			Change24h: values[vsCurrency+"_24h_change"],
			Volume24h: values[vsCurrency+"_24h_vol"],
			MarketCap: values[vsCurrency+"_market_cap"],
			Source:    SourceCoinGecko,
		})
	}

	return quotes, nil
}

// NewFallbackFeed creates a feed that only serves the built-in quotes
func NewFallbackFeed() PriceFeed {
	return fallbackFeed{}
}

type fallbackFeed struct{}

func (fallbackFeed) GetPrices(_ context.Context, symbols []string) ([]Quote, error) {
	return fallbackPrices(normalizeSymbols(symbols)), nil
}

func fallbackPrices(ids []string) []Quote {
	quotes := make([]Quote, 0, len(ids))
	for _, id := range ids {
		quotes = append(quotes, fallbackQuote(id))
	}
	return quotes
}

// fallbackQuote returns the built-in quote, unknown symbols are priced at 1 USD
func fallbackQuote(symbol string) Quote {
	q, ok := fallbackQuotes[symbol]
	if !ok {
		q = Quote{Price: 1}
	}
	q.Symbol = symbol
	q.Source = SourceFallback
	return q
}

// normalizeSymbols lowercases, trims and dedupes symbols, keeping first-seen order
func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// priceOf returns the price of symbol in quotes, 0 when absent
func priceOf(quotes []Quote, symbol string) float64 {
	for _, q := range quotes {
		if q.Symbol == symbol {
			return q.Price
		}
	}
	return 0
}
