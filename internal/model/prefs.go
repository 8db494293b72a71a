package model

import "time"

// Preferences is the persisted per-installation UI state.
type Preferences struct {
	Theme      string    `json:"theme"`
	ChartKind  string    `json:"chart_kind"`
	WindowDays int       `json:"window_days"`
	UpdatedAt  time.Time `json:"updated_at"`
}
