package prefs

import (
	"fmt"
	"sync"

	"StockGlance/internal/model"
	"StockGlance/internal/render"
)

// Manager handles persisted UI preferences with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	state    *model.Preferences
	filePath string
}

// NewManager creates a Manager, loading or initializing preferences
// from disk. Missing fields are filled from the given defaults.
func NewManager(filePath, defaultTheme, defaultKind string, defaultWindowDays int) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}

	// Initialize if fresh state
	if state.Theme == "" {
		state.Theme = defaultTheme
	}
	if state.ChartKind == "" {
		state.ChartKind = defaultKind
	}
	if state.WindowDays == 0 {
		state.WindowDays = defaultWindowDays
	}

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() model.Preferences {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// SetTheme validates and persists the theme choice.
func (m *Manager) SetTheme(name string) error {
	if _, err := render.ThemeByName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Theme = name
	return m.save()
}

// SetChartKind validates and persists the chart kind.
func (m *Manager) SetChartKind(kind model.ChartKind) error {
	if _, err := kind.Projection(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ChartKind = string(kind)
	return m.save()
}

// SetWindowDays persists the default chart window span.
func (m *Manager) SetWindowDays(days int) error {
	if days < 1 {
		return fmt.Errorf("window days must be >= 1, got %d", days)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.WindowDays = days
	return m.save()
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
