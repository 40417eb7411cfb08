package provider

import (
	"context"
	"time"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// Provider fetches historical daily bars for a symbol.
type Provider interface {
	// FetchHistory returns the daily bars for the symbol between start and end,
	// inclusive, in ascending time order. The context can be used to cancel the
	// fetch operation.
	// example:
	// FetchHistory(ctx, "AAPL", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))
	FetchHistory(ctx context.Context, symbol string, start time.Time, end time.Time) ([]types.Bar, error)
}

// NewProvider creates a new market data provider based on the provider type.
func NewProvider(providerType ProviderType, apiKey string) (Provider, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceProvider(), nil
	case ProviderPolygon:
		return NewPolygonProvider(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}
