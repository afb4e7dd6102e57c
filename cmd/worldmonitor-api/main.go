package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worldmonitor/internal/api"
	"worldmonitor/internal/config"
	"worldmonitor/internal/dashboard"
	"worldmonitor/internal/prefs"
	"worldmonitor/internal/refresh"
	"worldmonitor/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("worldmonitor-api: %v", err)
	}

	flag.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "HTTP listen address")
	flag.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "preference store: file, sqlite or memory")
	flag.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory holding saved preferences")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		config.Exitf("worldmonitor-api: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("worldmonitor-api: %v", err)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	store, err := prefs.Open(cfg.StoreBackend, cfg.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	dash := dashboard.New(store, dashboard.DefaultOptions())

	events := make(chan refresh.Event, 256)
	sched := refresh.NewScheduler(refresh.NewSources(cfg))
	sched.Intervals = refresh.IntervalsFrom(cfg.Intervals)
	sched.Emitter = &refresh.ChanEmitter{Ch: events}

	go logEvents(ctx, events)
	go func() {
		if err := sched.Run(ctx, dash); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("scheduler stopped: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.NewServer(dash, sched).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("worldmonitor-api listening on %s", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Printf("worldmonitor-api shutting down")
	return srv.Shutdown(shutdownCtx)
}

// logEvents writes scheduler failures and completions to the log.
func logEvents(ctx context.Context, events <-chan refresh.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if ev.State == refresh.StateRunning {
				continue
			}
			log.Printf("refresh: [%s] %s %s %s", ev.Group, ev.Key, ev.State, ev.Message)
		}
	}
}
