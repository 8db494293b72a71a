package model

import "time"

// WheelEvent carries one pointer-wheel tick over the chart container.
// DeltaY keeps the browser convention: positive is scroll-down, which
// zooms out. CursorFraction is the horizontal pointer position
// normalized to container width.
type WheelEvent struct {
	DeltaY         float64
	CursorFraction float64
}

// SelectionEvent is emitted by the chart widget when a range selection
// is committed, by drag-select or programmatically.
type SelectionEvent struct {
	First time.Time
	Last  time.Time
}

// ThemeEvent signals a theme switch.
type ThemeEvent struct {
	Theme string
}
