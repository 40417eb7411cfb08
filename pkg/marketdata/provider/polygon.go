package provider

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/schollz/progressbar/v3"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

type PolygonProvider struct {
	client *polygon.Client
}

func NewPolygonProvider(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon provider requires an API key")
	}

	return &PolygonProvider{
		client: polygon.New(apiKey),
	}, nil
}

// FetchHistory downloads daily aggregates from Polygon for the given symbol and
// date range. Polygon paginates internally via the aggs iterator.
func (p *PolygonProvider) FetchHistory(ctx context.Context, symbol string, start time.Time, end time.Time) ([]types.Bar, error) {
	totalDays := int(end.Sub(start).Hours()/24) + 1

	bar := progressbar.NewOptions(totalDays, progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s", symbol)), progressbar.OptionShowCount())

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(start),
		To:         models.Millis(end),
	}.WithLimit(50000)

	iter := p.client.ListAggs(ctx, params)

	var bars []types.Bar

	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, types.Bar{
			Time:   time.Time(agg.Timestamp),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})

		daysElapsed := int(time.Time(agg.Timestamp).Sub(start).Hours() / 24)
		bar.Set(daysElapsed)
	}

	if iter.Err() != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, iter.Err(), "error iterating polygon aggregates for %s", symbol)
	}

	bar.Finish()

	if len(bars) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataUnavailable, "polygon returned no data for %s between %s and %s", symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return bars, nil
}
