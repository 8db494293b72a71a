package model

import "time"

// Window is the currently visible time range on the chart.
type Window struct {
	Start time.Time
	End   time.Time
}

// Gap returns the width of the window.
func (w Window) Gap() time.Duration {
	return w.End.Sub(w.Start)
}

// Clamp limits the window to the given bounds.
func (w Window) Clamp(bounds Window) Window {
	out := w
	if out.Start.Before(bounds.Start) {
		out.Start = bounds.Start
	}
	if out.End.After(bounds.End) {
		out.End = bounds.End
	}
	return out
}
