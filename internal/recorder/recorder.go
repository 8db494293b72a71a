package recorder

import "time"

// ChangeSnapshot is the daily refresh output for one ticker.
type ChangeSnapshot struct {
	Ticker         string
	ValuePerDay    float64
	PercentPerDay  float64
	ValuePerYear   float64
	PercentPerYear float64
	LastPrice      float64
	Taken          time.Time
}

// Recorder persists change snapshots and user favourites.
type Recorder interface {
	RecordChange(snap *ChangeSnapshot) error
	// ToggleFavourite flips the (user, ticker) favourite flag and reports
	// whether the pair ended up added (true) or removed (false).
	ToggleFavourite(user, ticker string) (added bool, err error)
	Favourites(user string) ([]string, error)
	Close() error
}
