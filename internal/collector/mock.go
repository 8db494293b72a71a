package collector

import (
	"context"
	"time"

	"StockGlance/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Data  []model.Candle
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCandles(_ context.Context, _ string) ([]model.Candle, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Data != nil {
		return m.Data, nil
	}
	return GenerateCandles(100, 400), nil
}

// GenerateCandles synthesizes count daily candles ending today, drifting
// around basePrice.
func GenerateCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - i))
		candles[i] = model.Candle{
			StartTime: start,
			EndTime:   start.Add(24 * time.Hour),
			Open:      p * 0.999,
			High:      p * 1.005,
			Low:       p * 0.995,
			Close:     p,
			Value:     p,
			Volume:    1000000,
		}
	}
	return candles
}
