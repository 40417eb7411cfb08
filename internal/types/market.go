package types

import "time"

// Bar is a single OHLCV observation for one trading period.
type Bar struct {
	Time   time.Time `csv:"time"   yaml:"time"`
	Open   float64   `csv:"open"   yaml:"open"`
	High   float64   `csv:"high"   yaml:"high"`
	Low    float64   `csv:"low"    yaml:"low"`
	Close  float64   `csv:"close"  yaml:"close"`
	Volume float64   `csv:"volume" yaml:"volume"`
}
