package recorder

import (
	"sort"
	"sync"
)

// MemoryRecorder keeps favourites in memory and drops change snapshots.
// Used when no database path is configured.
type MemoryRecorder struct {
	mu   sync.Mutex
	favs map[string]map[string]bool
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{favs: make(map[string]map[string]bool)}
}

func (m *MemoryRecorder) RecordChange(_ *ChangeSnapshot) error { return nil }

func (m *MemoryRecorder) ToggleFavourite(user, ticker string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.favs[user] == nil {
		m.favs[user] = make(map[string]bool)
	}
	if m.favs[user][ticker] {
		delete(m.favs[user], ticker)
		return false, nil
	}
	m.favs[user][ticker] = true
	return true, nil
}

func (m *MemoryRecorder) Favourites(user string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tickers := make([]string, 0, len(m.favs[user]))
	for t := range m.favs[user] {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers, nil
}

func (m *MemoryRecorder) Close() error { return nil }
