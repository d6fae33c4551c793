// ABOUTME: Entry point for the leadview contractor terminal client
// ABOUTME: Wires config, logging, the stub backend, the stores, and the TUI
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ardanlabs/conf/v3"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ocalarepair/leadview/backend"
	"github.com/ocalarepair/leadview/store"
	"github.com/ocalarepair/leadview/tui"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Local overrides first; conf reads the LEADVIEW_* environment after.
	_ = godotenv.Load()

	cfg := struct {
		conf.Version
		API struct {
			// Simulated round-trip latency for every stub backend call.
			Latency time.Duration `conf:"default:1s"`
		}
		Log struct {
			// Empty means $XDG_STATE_HOME/leadview/leadview.log. The TUI owns
			// the terminal, so logs never go to stdout.
			Path string `conf:"default:"`
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  "OcalaRepair contractor portal",
		},
	}

	help, err := conf.Parse("LEADVIEW", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = filepath.Join(xdg.StateHome, "leadview", "leadview.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	log, err := newLog(logPath)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("startup", "version", version, "latency", cfg.API.Latency.String())

	stub := backend.NewStub(cfg.API.Latency)
	session := store.NewSessionStore(stub, stub, log)
	catalog := store.NewLeadCatalog(stub, log)
	settings := store.NewNotificationSettingsStore(stub, log)
	inbox := store.NewInbox(stub, log)

	m := tui.NewModel(session, catalog, settings, inbox, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	log.Infow("shutdown")
	return nil
}

func newLog(path string) (*zap.SugaredLogger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]interface{}{
		"service": "leadview",
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
