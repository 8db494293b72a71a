package model

import "time"

// Candle represents a single OHLCV bar for a fixed time bucket.
type Candle struct {
	StartTime time.Time
	EndTime   time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Value     float64 // typical-price metric, distinct from Close
	Volume    float64
}

// Series holds the full candle history for one ticker. A series is
// immutable after load; a fresh fetch replaces it wholesale.
type Series struct {
	Ticker    string
	Candles   []Candle
	FetchedAt time.Time
}
