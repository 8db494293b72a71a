package calculator

import (
	"math"
	"time"

	"StockGlance/internal/model"
)

// PriceRange scans candles overlapping the window and returns the
// highest high and lowest low.
func PriceRange(candles []model.Candle, window model.Window) (high, low float64, err error) {
	high = math.Inf(-1)
	low = math.Inf(1)
	found := false
	for _, c := range candles {
		if !overlaps(c, window.Start, window.End) {
			continue
		}
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
		found = true
	}
	if !found {
		return 0, 0, ErrEmptySeries
	}
	return high, low, nil
}

// LastPrice returns the close of the most recent candle.
func LastPrice(candles []model.Candle) (float64, error) {
	c, err := latest(candles)
	if err != nil {
		return 0, err
	}
	return c.Close, nil
}

// LastCandleTime returns the end of the most recent candle.
func LastCandleTime(candles []model.Candle) (time.Time, error) {
	c, err := latest(candles)
	if err != nil {
		return time.Time{}, err
	}
	return c.EndTime, nil
}

func latest(candles []model.Candle) (model.Candle, error) {
	if len(candles) == 0 {
		return model.Candle{}, ErrEmptySeries
	}
	best := candles[0]
	for _, c := range candles[1:] {
		if c.EndTime.After(best.EndTime) {
			best = c
		}
	}
	return best, nil
}
