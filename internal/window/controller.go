package window

import (
	"sync"
	"time"

	"StockGlance/internal/model"
)

// Settings configures the range controller.
type Settings struct {
	ZoomFactor float64       // widening fraction per wheel tick
	MinZoom    time.Duration // floor below which zoom-in is rejected
	Debounce   time.Duration // quiet period before a settle fires
}

// Controller owns the visible window of the chart. Zooms are anchored
// at the pointer: the widening or shrinking is split between the two
// edges according to the cursor fraction, not around the window center.
type Controller struct {
	mu        sync.Mutex
	settings  Settings
	bounds    model.Window
	selection model.Window
	timer     *time.Timer
	onSettle  func(model.Window)
}

// NewController creates a controller over the series' absolute data
// bounds with the given initial selection.
func NewController(settings Settings, bounds, initial model.Window) *Controller {
	return &Controller{settings: settings, bounds: bounds, selection: initial}
}

// OnSettle registers the callback invoked once the window has settled.
func (c *Controller) OnSettle(fn func(model.Window)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSettle = fn
}

// Bounds returns the absolute data bounds.
func (c *Controller) Bounds() model.Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bounds
}

// Selection returns the current selection as set by the last zoom or
// range commit. It may exceed the data bounds; see Clamped.
func (c *Controller) Selection() model.Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Clamped returns the selection clamped to the data bounds. The clamp
// is applied after the selection is stored and feeds only auxiliary
// range widgets; zoom arithmetic always runs on the raw selection.
func (c *Controller) Clamped() model.Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Clamp(c.bounds)
}

// HandleWheel applies one wheel tick: positive DeltaY zooms out,
// negative zooms in, zero is ignored.
func (c *Controller) HandleWheel(ev model.WheelEvent) {
	switch {
	case ev.DeltaY > 0:
		c.ZoomOut(ev.CursorFraction)
	case ev.DeltaY < 0:
		c.ZoomIn(ev.CursorFraction)
	}
}

// ZoomOut widens the window around the cursor and re-arms the settle
// debounce: growth = gap * factor, split cursorFraction before the
// start and the remainder after the end.
func (c *Controller) ZoomOut(cursorFraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	frac := clampFraction(cursorFraction)
	grow := float64(c.selection.Gap()) * c.settings.ZoomFactor
	c.selection.Start = c.selection.Start.Add(-time.Duration(grow * frac))
	c.selection.End = c.selection.End.Add(time.Duration(grow * (1 - frac)))
	c.armLocked()
}

// ZoomIn narrows the window around the cursor as the exact inverse of
// ZoomOut, so an out/in pair with the same factor and cursor restores
// the window. The zoom is silently rejected, with nothing re-armed,
// when the resulting gap would not stay above the minimum-zoom floor.
func (c *Controller) ZoomIn(cursorFraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	frac := clampFraction(cursorFraction)
	shrink := float64(c.selection.Gap()) * c.settings.ZoomFactor / (1 + c.settings.ZoomFactor)
	next := model.Window{
		Start: c.selection.Start.Add(time.Duration(shrink * frac)),
		End:   c.selection.End.Add(-time.Duration(shrink * (1 - frac))),
	}
	if next.Gap() <= c.settings.MinZoom {
		return
	}
	c.selection = next
	c.armLocked()
}

// CommitSelection applies an external range commit and settles
// immediately, bypassing the debounce.
func (c *Controller) CommitSelection(ev model.SelectionEvent) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.selection = model.Window{Start: ev.First, End: ev.Last}
	fn := c.onSettle
	sel := c.selection
	c.mu.Unlock()

	if fn != nil {
		fn(sel)
	}
}

// Close stops any pending settle.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// armLocked re-arms the trailing-edge debounce; the caller holds the
// mutex. Stopping the old timer first keeps exactly one pending settle
// alive under rapid wheel bursts.
func (c *Controller) armLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.settings.Debounce, c.settle)
}

func (c *Controller) settle() {
	c.mu.Lock()
	c.timer = nil
	fn := c.onSettle
	sel := c.selection
	c.mu.Unlock()

	if fn != nil {
		fn(sel)
	}
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
