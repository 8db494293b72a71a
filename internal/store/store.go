package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"StockGlance/internal/collector"
	"StockGlance/internal/model"
)

// ErrNoData is returned for any read against a store that never loaded.
var ErrNoData = errors.New("no candle data loaded")

// Store holds the loaded candle series for one ticker. Load is a
// fire-once operation: a failed fetch leaves the store empty for the
// rest of the session, with no automatic retry.
type Store struct {
	mu        sync.Mutex
	fetcher   collector.Fetcher
	ticker    string
	series    *model.Series
	attempted bool
}

// New creates an empty store for the given ticker.
func New(fetcher collector.Fetcher, ticker string) *Store {
	return &Store{fetcher: fetcher, ticker: ticker}
}

// Load issues the single network fetch. The attempt flag is set before
// the request goes out, so a concurrent or repeated Load can never
// cause a second fetch.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.attempted {
		s.mu.Unlock()
		return errors.New("load already attempted")
	}
	s.attempted = true
	s.mu.Unlock()

	candles, err := s.fetcher.FetchCandles(ctx, s.ticker)
	if err != nil {
		log.Printf("[WARN] candle fetch for %s failed, store stays empty: %v", s.ticker, err)
		return fmt.Errorf("load %s: %w", s.ticker, err)
	}

	s.mu.Lock()
	s.series = &model.Series{Ticker: s.ticker, Candles: candles, FetchedAt: time.Now()}
	s.mu.Unlock()
	return nil
}

// Ticker returns the ticker this store was created for.
func (s *Store) Ticker() string { return s.ticker }

// Ready reports whether candle data is available.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.series != nil
}

// Len returns the number of loaded candles.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.series == nil {
		return 0
	}
	return len(s.series.Candles)
}

// At returns the candle at position i. There is no time-keyed lookup;
// callers scan by position.
func (s *Store) At(i int) (model.Candle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.series == nil {
		return model.Candle{}, ErrNoData
	}
	if i < 0 || i >= len(s.series.Candles) {
		return model.Candle{}, fmt.Errorf("candle index %d out of range [0, %d)", i, len(s.series.Candles))
	}
	return s.series.Candles[i], nil
}

// Candles returns the loaded series for scanning. The slice must be
// treated as read-only.
func (s *Store) Candles() ([]model.Candle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.series == nil {
		return nil, ErrNoData
	}
	return s.series.Candles, nil
}

// Bounds returns the absolute data window, from the first candle's
// start to the last candle's end as delivered by the source.
func (s *Store) Bounds() (model.Window, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.series == nil || len(s.series.Candles) == 0 {
		return model.Window{}, ErrNoData
	}
	first := s.series.Candles[0]
	last := s.series.Candles[len(s.series.Candles)-1]
	return model.Window{Start: first.StartTime, End: last.EndTime}, nil
}
