package model

// Sign classifies the direction of a price change.
type Sign int

const (
	SignZero Sign = iota
	SignPositive
	SignNegative
)

func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "positive"
	case SignNegative:
		return "negative"
	default:
		return "zero"
	}
}

// PriceChange is the change between the candles nearest to the window
// boundaries. It is derived fresh on every window mutation and never
// stored across windows.
type PriceChange struct {
	Absolute float64
	Percent  float64
	Sign     Sign
}
