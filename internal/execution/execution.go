// Package execution turns signal transitions into orders and hands them to
// an execution endpoint. The core never retries submissions or inspects
// partial fills; those belong behind the Endpoint.
package execution

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/astrolab/astro-trading/internal/types"
)

// Endpoint submits orders to a broker and returns the broker's order id.
type Endpoint interface {
	SubmitOrder(ctx context.Context, order types.Order) (string, error)
}

// DecideOrder derives the order implied by the latest signal transition.
// It returns None when no order should be placed: the signal did not change,
// or it moved to flat (this layer only opens exposure, closing is the
// execution layer's bookkeeping).
func DecideOrder(prev, latest types.Position, symbol string, quantity decimal.Decimal, at time.Time) optional.Option[types.Order] {
	if latest == prev || latest == types.PositionFlat {
		return optional.None[types.Order]()
	}

	side := types.SideBuy
	if latest == types.PositionShort {
		side = types.SideSell
	}

	return optional.Some(types.Order{
		Symbol:      symbol,
		Side:        side,
		Quantity:    quantity,
		Type:        types.OrderTypeMarket,
		TimeInForce: types.TimeInForceGTC,
		Price:       decimal.Zero,
		Time:        at,
	})
}

// LatestTransition scans a signal series backwards and returns the previous
// and latest established positions: the latest signal and the signal that
// held immediately before it. A series of fewer than two entries has no
// transition and reports flat for the missing side.
func LatestTransition(signals types.SignalSeries) (prev, latest types.Position) {
	if len(signals) == 0 {
		return types.PositionFlat, types.PositionFlat
	}

	latest = signals[len(signals)-1]
	if len(signals) > 1 {
		prev = signals[len(signals)-2]
	}

	return prev, latest
}
