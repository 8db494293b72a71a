package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"StockGlance/internal/calculator"
	"StockGlance/internal/collector"
	"StockGlance/internal/model"
	"StockGlance/internal/recorder"
)

// Scheduler manages the daily refresh task that recomputes per-day and
// per-year price changes for every tracked ticker.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  collector.Fetcher
	Recorder recorder.Recorder
	Tickers  []string
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, f collector.Fetcher, rec recorder.Recorder, tickers []string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Fetcher:  f,
		Recorder: rec,
		Tickers:  tickers,
		Ctx:      ctx,
	}
}

// Register schedules the daily refresh.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyRefresh); err != nil {
		return fmt.Errorf("register daily refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily refresh immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyRefresh()
}

func (s *Scheduler) dailyRefresh() {
	log.Println("[INFO] running daily refresh")
	now := time.Now()

	for _, ticker := range s.Tickers {
		candles, err := s.Fetcher.FetchCandles(s.Ctx, ticker)
		if err != nil {
			log.Printf("[ERROR] daily refresh fetch %s: %v", ticker, err)
			continue
		}

		snap := &recorder.ChangeSnapshot{Ticker: ticker, Taken: now}
		snap.ValuePerDay, snap.PercentPerDay = s.changeOrZero(candles, now, 1, ticker)
		snap.ValuePerYear, snap.PercentPerYear = s.changeOrZero(candles, now, 365, ticker)

		if price, err := calculator.LastPrice(candles); err == nil {
			snap.LastPrice = price
		}

		if err := s.Recorder.RecordChange(snap); err != nil {
			log.Printf("[ERROR] record change %s: %v", ticker, err)
			continue
		}
		log.Printf("[INFO] %s refreshed: day %+.2f (%.2f%%), year %+.2f (%.2f%%)",
			ticker, snap.ValuePerDay, snap.PercentPerDay, snap.ValuePerYear, snap.PercentPerYear)
	}
}

// changeOrZero falls back to a zero change when the window has no
// usable data, so one bad ticker day does not block the snapshot.
func (s *Scheduler) changeOrZero(candles []model.Candle, now time.Time, days int, ticker string) (float64, float64) {
	pc, err := calculator.ChangeOverDays(candles, now, days)
	if err != nil {
		log.Printf("[WARN] change over %dd for %s: %v", days, ticker, err)
		return 0, 0
	}
	return pc.Absolute, pc.Percent
}
