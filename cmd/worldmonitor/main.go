package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"worldmonitor/internal/config"
	"worldmonitor/internal/dashboard"
	"worldmonitor/internal/prefs"
	"worldmonitor/internal/refresh"
	"worldmonitor/internal/telemetry"
	"worldmonitor/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("worldmonitor: %v", err)
	}

	flag.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "preference store: file, sqlite or memory")
	flag.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory holding saved preferences")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file (default <state-dir>/worldmonitor.log)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: worldmonitor [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Terminal dashboard of world news, markets, prediction markets\n")
		fmt.Fprintf(os.Stderr, "and earthquakes. Settings also come from WORLDMONITOR_* variables.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		config.Exitf("worldmonitor: %v", err)
	}

	if err := run(cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(cfg config.Config) error {
	// The TUI owns the terminal; logs go to a file.
	logPath := cfg.LogFile
	if logPath == "" {
		if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
		logPath = filepath.Join(cfg.StateDir, "worldmonitor.log")
	}
	logFile, err := tea.LogToFile(logPath, "worldmonitor")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		log.Printf("telemetry disabled: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	store, err := prefs.Open(cfg.StoreBackend, cfg.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	sched := refresh.NewScheduler(refresh.NewSources(cfg))
	sched.Intervals = refresh.IntervalsFrom(cfg.Intervals)

	dash := dashboard.New(store, ui.DashboardOptions())
	app := ui.New(ctx, dash, sched)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("worldmonitor: exiting")
	return nil
}
