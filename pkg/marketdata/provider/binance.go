package provider

import (
	"context"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// binancePageSize is the maximum number of klines Binance returns per request.
const binancePageSize = 500

type BinanceProvider struct {
	client *binance.Client
}

// NewBinanceProvider creates a provider backed by the public Binance klines API.
// Historical klines do not require credentials.
func NewBinanceProvider() Provider {
	return &BinanceProvider{
		client: binance.NewClient("", ""),
	}
}

// FetchHistory downloads daily klines for the given symbol and date range.
// Binance limits each request to 500 klines, so the range is paginated using
// the close time of the last kline in each page.
func (p *BinanceProvider) FetchHistory(ctx context.Context, symbol string, start time.Time, end time.Time) ([]types.Bar, error) {
	startMillis := start.UnixMilli()
	endMillis := end.UnixMilli()

	var bars []types.Bar

	currentStart := startMillis

	for {
		klines, err := p.client.NewKlinesService().
			Symbol(symbol).
			Interval("1d").
			StartTime(currentStart).
			EndTime(endMillis).
			Do(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "failed to fetch klines from Binance for %s", symbol)
		}

		for _, k := range klines {
			b, err := barFromKline(k)
			if err != nil {
				return nil, err
			}

			bars = append(bars, b)
		}

		// Last page.
		if len(klines) < binancePageSize {
			break
		}

		// Use the close time of the last kline + 1ms to avoid duplicates.
		currentStart = klines[len(klines)-1].CloseTime + 1
		if currentStart >= endMillis {
			break
		}
	}

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataUnavailable, "binance returned no data for %s between %s and %s", symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return bars, nil
}

// barFromKline converts a Binance kline to a bar. Binance serializes prices as
// strings, so each field is parsed strictly.
func barFromKline(k *binance.Kline) (types.Bar, error) {
	fields := map[string]string{
		"open":   k.Open,
		"high":   k.High,
		"low":    k.Low,
		"close":  k.Close,
		"volume": k.Volume,
	}

	parsed := make(map[string]float64, len(fields))

	for name, raw := range fields {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Bar{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "failed to parse kline %s value %q", name, raw)
		}

		parsed[name] = v
	}

	return types.Bar{
		// OpenTime is the timestamp of the bar.
		Time:   time.UnixMilli(k.OpenTime),
		Open:   parsed["open"],
		High:   parsed["high"],
		Low:    parsed["low"],
		Close:  parsed["close"],
		Volume: parsed["volume"],
	}, nil
}
