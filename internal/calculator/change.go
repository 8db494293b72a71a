package calculator

import (
	"errors"
	"math"
	"time"

	"StockGlance/internal/model"
)

var (
	// ErrEmptySeries is returned when a calculation is attempted over no candles.
	ErrEmptySeries = errors.New("empty candle series")
	// ErrZeroOpenPrice is returned when the percent change is undefined
	// because the opening price at the window start is zero.
	ErrZeroOpenPrice = errors.New("zero open price at window start")
)

// Nearest returns the candle whose start time is closest to instant.
// The whole series is scanned regardless of ordering; on an exact
// distance tie the earlier-indexed candle is kept, because only a
// strictly smaller distance replaces the current best.
func Nearest(candles []model.Candle, instant time.Time) (model.Candle, error) {
	if len(candles) == 0 {
		return model.Candle{}, ErrEmptySeries
	}
	best := candles[0]
	bestDist := absDuration(candles[0].StartTime.Sub(instant))
	for _, c := range candles[1:] {
		if d := absDuration(c.StartTime.Sub(instant)); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, nil
}

// Change computes the price change between the candles nearest to the
// window boundaries: open at the start against close at the end.
func Change(candles []model.Candle, start, end time.Time) (model.PriceChange, error) {
	first, err := Nearest(candles, start)
	if err != nil {
		return model.PriceChange{}, err
	}
	last, err := Nearest(candles, end)
	if err != nil {
		return model.PriceChange{}, err
	}
	return changeBetween(first.Open, last.Close)
}

// ChangeOverDays computes the change over the trailing days-long window
// ending at now, normalized to midnight boundaries the way the daily
// update job expects: the open of the earliest overlapping candle
// against the close of the latest one.
func ChangeOverDays(candles []model.Candle, now time.Time, days int) (model.PriceChange, error) {
	if len(candles) == 0 {
		return model.PriceChange{}, ErrEmptySeries
	}
	if days < 1 {
		days = 1
	}
	dayStart := now.UTC().Truncate(24 * time.Hour)
	from := dayStart.AddDate(0, 0, -days)
	till := dayStart.AddDate(0, 0, 1)

	var first, last model.Candle
	found := false
	for _, c := range candles {
		if !overlaps(c, from, till) {
			continue
		}
		if !found || c.StartTime.Before(first.StartTime) {
			first = c
		}
		if !found || c.EndTime.After(last.EndTime) {
			last = c
		}
		found = true
	}
	if !found {
		return model.PriceChange{}, ErrEmptySeries
	}
	return changeBetween(first.Open, last.Close)
}

func changeBetween(first, last float64) (model.PriceChange, error) {
	if first == 0 {
		return model.PriceChange{}, ErrZeroOpenPrice
	}
	absolute := normalizeZero(last - first)
	pc := model.PriceChange{
		Absolute: absolute,
		Percent:  normalizeZero(absolute / first * 100),
	}
	switch {
	case absolute > 0:
		pc.Sign = model.SignPositive
	case absolute < 0:
		pc.Sign = model.SignNegative
	default:
		pc.Sign = model.SignZero
	}
	return pc, nil
}

// normalizeZero maps negative zero to positive zero.
func normalizeZero(v float64) float64 {
	if v == 0 && math.Signbit(v) {
		return 0
	}
	return v
}

func overlaps(c model.Candle, from, till time.Time) bool {
	return c.StartTime.Before(till) && c.EndTime.After(from)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
