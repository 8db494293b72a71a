package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"StockGlance/internal/collector"
	"StockGlance/internal/model"
	"StockGlance/internal/store"
	"StockGlance/internal/window"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func testCandles() []model.Candle {
	candles := make([]model.Candle, 40)
	for i := range candles {
		price := 100 + float64(i)
		candles[i] = model.Candle{
			StartTime: day(1).AddDate(0, 0, i),
			EndTime:   day(1).AddDate(0, 0, i+1),
			Open:      price,
			High:      price + 1,
			Low:       price - 1,
			Close:     price + 0.5,
			Value:     price + 0.5,
			Volume:    1000,
		}
	}
	return candles
}

func loadedStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(&collector.MockFetcher{Data: testCandles()}, "SBER")
	if err := st.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return st
}

func testOptions(debounce time.Duration) Options {
	return Options{
		WindowDays:    30,
		PriceDecimals: 2,
		Theme:         "dark",
		ChartKind:     "candlestick",
		Zoom: window.Settings{
			ZoomFactor: 0.1,
			MinZoom:    24 * time.Hour,
			Debounce:   debounce,
		},
	}
}

type recorderSub struct {
	mu      sync.Mutex
	updates []Update
}

func (r *recorderSub) record(u Update) {
	r.mu.Lock()
	r.updates = append(r.updates, u)
	r.mu.Unlock()
}

func (r *recorderSub) snapshot() []Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Update(nil), r.updates...)
}

func TestSession_RefreshPublishesInitialWindow(t *testing.T) {
	sess, err := New(loadedStore(t), testOptions(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	if sess.ID == "" {
		t.Error("session must carry an ID")
	}

	sub := &recorderSub{}
	sess.Subscribe(sub.record)
	sess.Refresh()

	updates := sub.snapshot()
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
	u := updates[0]
	if u.Err != nil {
		t.Fatalf("update error: %v", u.Err)
	}
	if u.Window.Gap() != 30*24*time.Hour {
		t.Errorf("initial gap: got %v, want 30 days", u.Window.Gap())
	}
	if u.Change.Sign != model.SignPositive {
		t.Errorf("rising series should give a positive change, got %v", u.Change.Sign)
	}
	if u.Label.Text == "" || u.Label.Color == "" {
		t.Errorf("label not rendered: %+v", u.Label)
	}
}

func TestSession_WheelSettlesOnceAfterBurst(t *testing.T) {
	sess, err := New(loadedStore(t), testOptions(40*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	sub := &recorderSub{}
	sess.Subscribe(sub.record)

	for i := 0; i < 5; i++ {
		sess.HandleWheel(model.WheelEvent{DeltaY: 120, CursorFraction: 0.5})
	}
	time.Sleep(150 * time.Millisecond)

	updates := sub.snapshot()
	if len(updates) != 1 {
		t.Fatalf("expected 1 settled update for the burst, got %d", len(updates))
	}
	if updates[0].Window.Gap() <= 30*24*time.Hour {
		t.Errorf("zoom out did not widen the window: %v", updates[0].Window.Gap())
	}
}

func TestSession_SelectionPublishesImmediately(t *testing.T) {
	sess, err := New(loadedStore(t), testOptions(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	sub := &recorderSub{}
	sess.Subscribe(sub.record)

	sess.HandleSelection(model.SelectionEvent{First: day(5), Last: day(15)})

	updates := sub.snapshot()
	if len(updates) != 1 {
		t.Fatalf("expected 1 immediate update, got %d", len(updates))
	}
	u := updates[0]
	if !u.Window.Start.Equal(day(5)) || !u.Window.End.Equal(day(15)) {
		t.Errorf("window: got %+v", u.Window)
	}
	// The candle starting day 5 opens 104, the one starting day 15
	// closes 114.5.
	if u.Change.Absolute != 10.5 {
		t.Errorf("absolute: got %.2f, want 10.5", u.Change.Absolute)
	}
}

func TestSession_ThemeSwitchRerenders(t *testing.T) {
	sess, err := New(loadedStore(t), testOptions(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	sub := &recorderSub{}
	sess.Subscribe(sub.record)

	if err := sess.HandleTheme(model.ThemeEvent{Theme: "light"}); err != nil {
		t.Fatal(err)
	}
	updates := sub.snapshot()
	if len(updates) != 1 {
		t.Fatalf("expected re-render after theme switch, got %d updates", len(updates))
	}
	if updates[0].Label.Color != "--green-600" {
		t.Errorf("color: got %q, want light positive token", updates[0].Label.Color)
	}

	if err := sess.HandleTheme(model.ThemeEvent{Theme: "sepia"}); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestSession_ChartKindAndRows(t *testing.T) {
	sess, err := New(loadedStore(t), testOptions(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	rows, err := sess.SeriesRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 40 || len(rows[0]) != 5 {
		t.Fatalf("candlestick rows: %d x %d", len(rows), len(rows[0]))
	}

	if err := sess.SetChartKind(model.KindLine); err != nil {
		t.Fatal(err)
	}
	rows, err = sess.SeriesRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows[0]) != 2 {
		t.Errorf("line rows should be x/value pairs, got %v", rows[0])
	}

	if err := sess.SetChartKind("pie"); err == nil {
		t.Error("expected error for unknown chart kind")
	}
}

func TestSession_RejectsBadOptions(t *testing.T) {
	st := loadedStore(t)

	opts := testOptions(time.Hour)
	opts.Theme = "sepia"
	if _, err := New(st, opts); err == nil {
		t.Error("expected error for unknown theme")
	}

	opts = testOptions(time.Hour)
	opts.ChartKind = "pie"
	if _, err := New(st, opts); err == nil {
		t.Error("expected error for unknown chart kind")
	}
}
