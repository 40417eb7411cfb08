package execution

import (
	"context"
	"strconv"

	binance "github.com/adshao/go-binance/v2"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// BinanceEndpoint submits orders to Binance.
type BinanceEndpoint struct {
	client *binance.Client
}

// NewBinanceEndpoint creates an endpoint authenticated with the given API
// credentials.
func NewBinanceEndpoint(apiKey, secretKey string) (*BinanceEndpoint, error) {
	if apiKey == "" || secretKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "binance endpoint requires api key and secret")
	}

	return &BinanceEndpoint{
		client: binance.NewClient(apiKey, secretKey),
	}, nil
}

// SubmitOrder places the order and returns Binance's order id. Failures are
// surfaced unchanged under the execution error code, never retried here.
func (b *BinanceEndpoint) SubmitOrder(ctx context.Context, order types.Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", errors.Wrap(errors.ErrCodeOrderRejected, "invalid order", err)
	}

	side := binance.SideTypeBuy
	if order.Side == types.SideSell {
		side = binance.SideTypeSell
	}

	service := b.client.NewCreateOrderService().
		Symbol(order.Symbol).
		Side(side).
		Quantity(order.Quantity.String())

	if order.Type == types.OrderTypeLimit {
		service = service.
			Type(binance.OrderTypeLimit).
			Price(order.Price.String()).
			TimeInForce(binance.TimeInForceTypeGTC)
	} else {
		service = service.Type(binance.OrderTypeMarket)
	}

	response, err := service.Do(ctx)
	if err != nil {
		return "", errors.Wrapf(errors.ErrCodeOrderFailed, err, "binance rejected %s %s %s", order.Side, order.Quantity, order.Symbol)
	}

	return strconv.FormatInt(response.OrderID, 10), nil
}
