package model

import "fmt"

// ChartKind selects how the candle series is drawn.
type ChartKind string

const (
	KindCandlestick ChartKind = "candlestick"
	KindOHLC        ChartKind = "ohlc"
	KindLine        ChartKind = "line"
	KindArea        ChartKind = "area"
	KindStepArea    ChartKind = "step-area"
	KindStepLine    ChartKind = "step-line"
	KindStick       ChartKind = "stick"
	KindRangeColumn ChartKind = "range-column"
	KindRangeArea   ChartKind = "range-area"
)

// Projection names the candle fields a chart kind consumes.
type Projection int

const (
	ProjectionOHLC    Projection = iota // open/high/low/close
	ProjectionValue                     // x/value
	ProjectionHighLow                   // x/high/low
)

// Projection returns the data projection for the kind.
func (k ChartKind) Projection() (Projection, error) {
	switch k {
	case KindCandlestick, KindOHLC:
		return ProjectionOHLC, nil
	case KindLine, KindArea, KindStepArea, KindStepLine, KindStick:
		return ProjectionValue, nil
	case KindRangeColumn, KindRangeArea:
		return ProjectionHighLow, nil
	}
	return 0, fmt.Errorf("unknown chart kind %q", string(k))
}
