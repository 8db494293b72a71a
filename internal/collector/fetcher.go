package collector

import (
	"context"

	"StockGlance/internal/model"
)

// Fetcher defines the interface for fetching candle history.
type Fetcher interface {
	FetchCandles(ctx context.Context, ticker string) ([]model.Candle, error)
	Name() string
}
