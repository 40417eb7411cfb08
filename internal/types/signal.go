package types

// Position is a discrete position signal.
type Position int8

const (
	// PositionShort is a signal to hold a short position
	PositionShort Position = -1
	// PositionFlat is a signal to hold no position
	PositionFlat Position = 0
	// PositionLong is a signal to hold a long position
	PositionLong Position = 1
)

// String returns a human-readable name for the position.
func (p Position) String() string {
	switch p {
	case PositionShort:
		return "short"
	case PositionLong:
		return "long"
	case PositionFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// Sign normalizes an arbitrary score to a Position: positive scores map to
// long, negative to short, zero to flat. Combining strategies saturates at
// one unit, agreeing sub-strategies never stack position size.
func Sign(score int) Position {
	switch {
	case score > 0:
		return PositionLong
	case score < 0:
		return PositionShort
	default:
		return PositionFlat
	}
}

// SignalSeries is a per-bar sequence of position signals aligned to a price series.
type SignalSeries []Position
