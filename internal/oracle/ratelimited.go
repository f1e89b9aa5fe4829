package oracle

import (
	"context"

	"go.uber.org/zap"

	"github.com/rwa-market/asset-catalog/internal/logger"
	"github.com/rwa-market/asset-catalog/internal/ratelimit"
)

type rateLimitedFeed struct {
	feed     PriceFeed
	limiter  ratelimit.Limiter
	provider string
}

// NewRateLimitedFeed takes a limiter token for provider before each upstream call.
// When no token can be had in time the built-in quotes are served instead.
func NewRateLimitedFeed(feed PriceFeed, limiter ratelimit.Limiter, provider string) PriceFeed {
	return &rateLimitedFeed{
		feed:     feed,
		limiter:  limiter,
		provider: provider,
	}
}

func (f *rateLimitedFeed) GetPrices(ctx context.Context, symbols []string) ([]Quote, error) {
	if err := f.limiter.Wait(ctx, f.provider); err != nil {
		ids := normalizeSymbols(symbols)
		logger.WarnCtx(ctx, "Price feed rate limited, serving fallback quotes",
			zap.Error(err),
			zap.String("provider", f.provider),
			zap.Strings("symbols", ids),
		)
		return fallbackPrices(ids), nil
	}
	return f.feed.GetPrices(ctx, symbols)
}
