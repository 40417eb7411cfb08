package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderTestSuite struct {
	suite.Suite
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderTestSuite))
}

func (suite *OrderTestSuite) TestValidOrder() {
	order := Order{
		Symbol:      "AAPL",
		Side:        SideBuy,
		Quantity:    decimal.NewFromInt(10),
		Type:        OrderTypeMarket,
		TimeInForce: TimeInForceGTC,
		Price:       decimal.Zero,
		Time:        time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.NoError(order.Validate())
}

func (suite *OrderTestSuite) TestInvalidSide() {
	order := Order{
		Symbol:      "AAPL",
		Side:        Side("HOLD"),
		Quantity:    decimal.NewFromInt(10),
		Type:        OrderTypeMarket,
		TimeInForce: TimeInForceGTC,
	}

	suite.Error(order.Validate())
}

func (suite *OrderTestSuite) TestMissingSymbol() {
	order := Order{
		Symbol:      "",
		Side:        SideSell,
		Quantity:    decimal.NewFromInt(1),
		Type:        OrderTypeLimit,
		TimeInForce: TimeInForceDay,
		Price:       decimal.NewFromFloat(101.5),
	}

	suite.Error(order.Validate())
}
