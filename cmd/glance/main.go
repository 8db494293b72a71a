package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockGlance/internal/collector"
	"StockGlance/internal/config"
	"StockGlance/internal/prefs"
	"StockGlance/internal/recorder"
	"StockGlance/internal/scheduler"
	"StockGlance/internal/session"
	"StockGlance/internal/store"
	"StockGlance/internal/window"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockGlance starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.Resource, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = &collector.MockFetcher{}
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init preferences
	pm, err := prefs.NewManager(cfg.Prefs.StateFile, cfg.Chart.Theme, cfg.Chart.Kind, cfg.Chart.DefaultWindowDays)
	if err != nil {
		log.Fatalf("[FATAL] init preferences: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using memory: %v", err)
			rec = recorder.NewMemoryRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewMemoryRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, fetcher, rec, cfg.DataSource.Tickers)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Load the chart series once; a failed fetch leaves the chart empty.
	st := store.New(fetcher, cfg.DataSource.Ticker)
	if err := st.Load(ctx); err != nil {
		log.Printf("[WARN] initial load: %v", err)
	}

	if st.Ready() {
		p := pm.Get()
		sess, err := session.New(st, session.Options{
			WindowDays:    p.WindowDays,
			PriceDecimals: cfg.Chart.PriceDecimals,
			Theme:         p.Theme,
			ChartKind:     p.ChartKind,
			Zoom: window.Settings{
				ZoomFactor: cfg.Chart.ZoomFactor,
				MinZoom:    time.Duration(cfg.Chart.MinZoomDays) * 24 * time.Hour,
				Debounce:   time.Duration(cfg.Chart.DebounceMs) * time.Millisecond,
			},
		})
		if err != nil {
			log.Fatalf("[FATAL] init session: %v", err)
		}
		defer sess.Close()

		sess.Subscribe(func(u session.Update) {
			if u.Err != nil {
				return
			}
			log.Printf("[INFO] %s %s..%s: %s",
				st.Ticker(),
				u.Clamped.Start.Format("2006-01-02"), u.Clamped.End.Format("2006-01-02"),
				u.Label.Text)
		})
		sess.Refresh()
		log.Printf("[INFO] session %s ready: %d candles loaded", sess.ID, st.Len())
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily refresh now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockGlance is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockGlance stopped")
}
