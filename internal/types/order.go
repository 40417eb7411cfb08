package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Side string

type OrderType string

type TimeInForce string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceDay TimeInForce = "DAY"
)

// Order is the side/quantity decision handed to an execution endpoint.
// The core never retries submissions or inspects partial fills; that belongs
// to the execution layer behind the endpoint.
type Order struct {
	Symbol      string          `validate:"required"`
	Side        Side            `validate:"required,oneof=BUY SELL"`
	Quantity    decimal.Decimal `validate:"required"`
	Type        OrderType       `validate:"required,oneof=MARKET LIMIT"`
	TimeInForce TimeInForce     `validate:"required,oneof=GTC IOC DAY"`
	// Price is only consulted for limit orders.
	Price decimal.Decimal
	// Time is when the signal that produced this order was established.
	Time time.Time
}

// Validate checks the order fields against their constraints.
func (o *Order) Validate() error {
	validate := validator.New()

	return validate.Struct(o)
}
