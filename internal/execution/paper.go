package execution

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// PaperEndpoint accepts every valid order without touching a broker. It
// records submissions for inspection, which makes it the endpoint of choice
// for tests and dry runs.
type PaperEndpoint struct {
	orders []types.Order
	mu     sync.Mutex
}

// NewPaperEndpoint creates an empty paper endpoint.
func NewPaperEndpoint() *PaperEndpoint {
	return &PaperEndpoint{
		orders: nil,
		mu:     sync.Mutex{},
	}
}

// SubmitOrder validates and records the order, returning a fresh order id.
func (p *PaperEndpoint) SubmitOrder(ctx context.Context, order types.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(errors.ErrCodeOrderFailed, "order submission cancelled", err)
	}

	if err := order.Validate(); err != nil {
		return "", errors.Wrap(errors.ErrCodeOrderRejected, "invalid order", err)
	}

	if !order.Quantity.IsPositive() {
		return "", errors.Newf(errors.ErrCodeInvalidQuantity, "quantity must be positive, got %s", order.Quantity)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.orders = append(p.orders, order)

	return uuid.New().String(), nil
}

// Orders returns a copy of the submitted orders in submission order.
func (p *PaperEndpoint) Orders() []types.Order {
	p.mu.Lock()
	defer p.mu.Unlock()

	orders := make([]types.Order, len(p.orders))
	copy(orders, p.orders)

	return orders
}
