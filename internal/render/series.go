package render

import "StockGlance/internal/model"

// SeriesSpec describes how the chart widget should draw the loaded
// series for a given chart kind.
type SeriesSpec struct {
	Kind       model.ChartKind
	Projection model.Projection
}

// NewSeriesSpec validates the kind and derives its data projection.
func NewSeriesSpec(kind model.ChartKind) (SeriesSpec, error) {
	proj, err := kind.Projection()
	if err != nil {
		return SeriesSpec{}, err
	}
	return SeriesSpec{Kind: kind, Projection: proj}, nil
}

// Rows projects candles into the chart widget's data-table rows for the
// spec's projection. The x value is the candle start in unix millis.
func Rows(candles []model.Candle, spec SeriesSpec) [][]float64 {
	rows := make([][]float64, len(candles))
	for i, c := range candles {
		x := float64(c.StartTime.UnixMilli())
		switch spec.Projection {
		case model.ProjectionOHLC:
			rows[i] = []float64{x, c.Open, c.High, c.Low, c.Close}
		case model.ProjectionHighLow:
			rows[i] = []float64{x, c.High, c.Low}
		default:
			rows[i] = []float64{x, c.Value}
		}
	}
	return rows
}
