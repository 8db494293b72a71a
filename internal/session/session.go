package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"StockGlance/internal/calculator"
	"StockGlance/internal/model"
	"StockGlance/internal/render"
	"StockGlance/internal/store"
	"StockGlance/internal/window"
)

// Update is pushed to subscribers after every settled window change.
type Update struct {
	Window  model.Window // raw selection
	Clamped model.Window // data-bounded, for auxiliary range widgets
	Change  model.PriceChange
	Label   render.Label
	Err     error
}

// Options seeds a session from configuration and stored preferences.
type Options struct {
	WindowDays    int
	PriceDecimals int
	Theme         string
	ChartKind     string
	Zoom          window.Settings
}

// Session owns all mutable chart state for one loaded ticker: the
// candle store, the range controller, the active theme and chart kind.
// Handlers receive it explicitly instead of closing over globals.
type Session struct {
	ID string

	controller *window.Controller

	mu          sync.Mutex
	store       *store.Store
	theme       render.Theme
	spec        render.SeriesSpec
	decimals    int
	subscribers []func(Update)
}

// New builds a session over a ready store. The initial window covers
// the last WindowDays of data, clipped to the series bounds. Nothing is
// published until the first settle; call Refresh for the initial update.
func New(st *store.Store, opts Options) (*Session, error) {
	bounds, err := st.Bounds()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	theme, err := render.ThemeByName(opts.Theme)
	if err != nil {
		return nil, err
	}
	spec, err := render.NewSeriesSpec(model.ChartKind(opts.ChartKind))
	if err != nil {
		return nil, err
	}
	days := opts.WindowDays
	if days <= 0 {
		days = 365
	}
	initial := model.Window{Start: bounds.End.AddDate(0, 0, -days), End: bounds.End}
	if initial.Start.Before(bounds.Start) {
		initial.Start = bounds.Start
	}

	s := &Session{
		ID:         uuid.NewString(),
		store:      st,
		controller: window.NewController(opts.Zoom, bounds, initial),
		theme:      theme,
		spec:       spec,
		decimals:   opts.PriceDecimals,
	}
	s.controller.OnSettle(s.settled)
	return s, nil
}

// Subscribe registers an observer for settled updates.
func (s *Session) Subscribe(fn func(Update)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// HandleWheel forwards a wheel event to the range controller.
func (s *Session) HandleWheel(ev model.WheelEvent) {
	s.controller.HandleWheel(ev)
}

// HandleSelection applies a committed range selection immediately,
// bypassing the debounce.
func (s *Session) HandleSelection(ev model.SelectionEvent) {
	s.controller.CommitSelection(ev)
}

// HandleTheme switches the color tokens and re-renders the current
// window right away.
func (s *Session) HandleTheme(ev model.ThemeEvent) error {
	theme, err := render.ThemeByName(ev.Theme)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	s.Refresh()
	return nil
}

// SetChartKind switches the drawing kind, revalidating its projection.
func (s *Session) SetChartKind(kind model.ChartKind) error {
	spec, err := render.NewSeriesSpec(kind)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.spec = spec
	s.mu.Unlock()
	return nil
}

// SeriesRows returns the chart data rows for the active kind.
func (s *Session) SeriesRows() ([][]float64, error) {
	candles, err := s.store.Candles()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	spec := s.spec
	s.mu.Unlock()
	return render.Rows(candles, spec), nil
}

// Refresh recomputes and publishes an update for the current window.
func (s *Session) Refresh() {
	s.settled(s.controller.Selection())
}

// Close stops the controller's pending work and drops subscribers.
func (s *Session) Close() {
	s.controller.Close()
	s.mu.Lock()
	s.subscribers = nil
	s.mu.Unlock()
}

func (s *Session) settled(sel model.Window) {
	upd := Update{Window: sel, Clamped: s.controller.Clamped()}

	candles, err := s.store.Candles()
	if err == nil {
		upd.Change, err = calculator.Change(candles, sel.Start, sel.End)
	}
	if err != nil {
		upd.Err = err
		log.Printf("[WARN] price change for window %s..%s: %v",
			sel.Start.Format(time.RFC3339), sel.End.Format(time.RFC3339), err)
	} else {
		s.mu.Lock()
		theme, decimals := s.theme, s.decimals
		s.mu.Unlock()
		upd.Label = render.ChangeLabel(upd.Change, decimals, theme)
	}

	s.mu.Lock()
	subs := append(([]func(Update))(nil), s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(upd)
	}
}
