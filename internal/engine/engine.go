package engine

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/astrolab/astro-trading/internal/backtest"
	"github.com/astrolab/astro-trading/internal/execution"
	"github.com/astrolab/astro-trading/internal/logger"
	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/strategy"
	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
	"github.com/astrolab/astro-trading/pkg/marketdata/provider"
	"github.com/astrolab/astro-trading/pkg/marketdata/store"
)

// Engine wires a market data provider, the strategy registry and the
// backtester into one pipeline.
type Engine struct {
	log        *logger.Logger
	provider   provider.Provider
	strategies *strategy.Registry
}

func NewEngine(p provider.Provider, log *logger.Logger) *Engine {
	return &Engine{
		log:        log,
		provider:   p,
		strategies: strategy.NewRegistry(),
	}
}

// Report is the outcome of a backtest run.
type Report struct {
	Symbol  string
	Signals types.SignalSeries
	Result  *backtest.Result
}

// LatestPosition returns the position the strategy holds after the last bar.
func (r *Report) LatestPosition() types.Position {
	if len(r.Signals) == 0 {
		return types.PositionFlat
	}

	return r.Signals[len(r.Signals)-1]
}

// Run fetches history, evaluates the configured strategy and backtests the
// generated signals. The strategy configuration is validated against the
// series length before any indicator is computed.
func (e *Engine) Run(ctx context.Context, cfg Config) (*Report, error) {
	ps, err := e.fetchSeries(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := e.strategies.Validate(cfg.Strategy, ps.Len(), cfg.Symbol); err != nil {
		return nil, err
	}

	_, signals, err := e.strategies.Evaluate(ps, cfg.Strategy)
	if err != nil {
		return nil, err
	}

	result, err := backtest.Run(ps, signals)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Symbol:  cfg.Symbol,
		Signals: signals,
		Result:  result,
	}

	e.log.Info("backtest finished",
		zap.String("symbol", cfg.Symbol),
		zap.String("strategy", cfg.Strategy.Name),
		zap.Int("bars", ps.Len()),
		zap.Float64("strategyReturn", result.FinalStrategyReturn()),
		zap.Float64("marketReturn", result.FinalMarketReturn()),
		zap.String("latestPosition", report.LatestPosition().String()),
	)

	return report, nil
}

// Signals evaluates the configured strategy and returns the signal series
// without backtesting it.
func (e *Engine) Signals(ctx context.Context, cfg Config) (types.SignalSeries, error) {
	ps, err := e.fetchSeries(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := e.strategies.Validate(cfg.Strategy, ps.Len(), cfg.Symbol); err != nil {
		return nil, err
	}

	_, signals, err := e.strategies.Evaluate(ps, cfg.Strategy)
	if err != nil {
		return nil, err
	}

	return signals, nil
}

// Download fetches history for the configured symbol and persists it to the
// DuckDB store at cfg.StorePath. Returns the number of bars written.
func (e *Engine) Download(ctx context.Context, cfg Config) (int, error) {
	if cfg.StorePath == "" {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration, "storePath is required for download")
	}

	bars, err := e.provider.FetchHistory(ctx, cfg.Symbol, cfg.Start, cfg.End)
	if err != nil {
		return 0, err
	}

	s, err := store.NewBarStore(cfg.StorePath)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	if err := s.WriteBars(cfg.Symbol, bars); err != nil {
		return 0, err
	}

	e.log.Info("download finished",
		zap.String("symbol", cfg.Symbol),
		zap.Int("bars", len(bars)),
		zap.String("store", cfg.StorePath),
	)

	return len(bars), nil
}

// ExecuteLatest submits an order for the most recent signal transition, if
// any. Returns None when the transition needs no order.
func (e *Engine) ExecuteLatest(ctx context.Context, cfg Config, signals types.SignalSeries, endpoint execution.Endpoint) (optional.Option[string], error) {
	quantity := decimal.NewFromInt(1)

	if cfg.Quantity != "" {
		var err error

		quantity, err = decimal.NewFromString(cfg.Quantity)
		if err != nil {
			return optional.None[string](), errors.Wrapf(errors.ErrCodeInvalidQuantity, err, "invalid quantity %q", cfg.Quantity)
		}
	}

	prev, latest := execution.LatestTransition(signals)

	order := execution.DecideOrder(prev, latest, cfg.Symbol, quantity, time.Now().UTC())
	if order.IsNone() {
		return optional.None[string](), nil
	}

	o, err := order.Take()
	if err != nil {
		return optional.None[string](), err
	}

	id, err := endpoint.SubmitOrder(ctx, o)
	if err != nil {
		return optional.None[string](), err
	}

	e.log.Info("order submitted",
		zap.String("symbol", cfg.Symbol),
		zap.String("side", string(o.Side)),
		zap.String("orderId", id),
	)

	return optional.Some(id), nil
}

// fetchSeries fetches history and validates it into an immutable price series.
// Provider errors and data integrity errors keep their own codes so callers
// can tell "no data" from "bad data".
func (e *Engine) fetchSeries(ctx context.Context, cfg Config) (*series.PriceSeries, error) {
	bars, err := e.provider.FetchHistory(ctx, cfg.Symbol, cfg.Start, cfg.End)
	if err != nil {
		return nil, err
	}

	return series.NewPriceSeries(bars)
}
