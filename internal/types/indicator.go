package types

type IndicatorType string

const (
	IndicatorTypeSMA IndicatorType = "sma"
	IndicatorTypeRSI IndicatorType = "rsi"
)
