package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/logger"
	"github.com/abhisek/mathdrill/internal/problemgen"
	sessionscreen "github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/tui"
)

const connectTimeout = 10 * time.Second

// deps are the collaborators every command builds on.
type deps struct {
	cfg   *config.Config
	log   *zap.Logger
	repo  store.Repo
	close func()
}

// openDeps loads configuration, builds the logger and opens the store.
// Interactive runs log to a file because the TUI owns the terminal.
func openDeps(cmd *cobra.Command, interactive bool) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var log *zap.Logger
	if interactive {
		path, err := logPath(cfg)
		if err != nil {
			return nil, err
		}
		log, err = logger.NewFile(cfg, path)
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	} else {
		log, err = logger.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	if cfg.DB.UsePostgres() {
		ctx, cancel := context.WithTimeout(cmd.Context(), connectTimeout)
		defer cancel()
		pg, err := store.OpenPostgres(ctx, cfg.DB.URL, store.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Debug("using postgres store")
		return &deps{cfg: cfg, log: log, repo: pg, close: func() {
			pg.Close()
			_ = log.Sync()
		}}, nil
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("using sqlite store", zap.String("path", dbPath))
	return &deps{cfg: cfg, log: log, repo: st.RecordRepo(), close: func() {
		st.Close()
		_ = log.Sync()
	}}, nil
}

func logPath(cfg *config.Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, store.EnsureDir(cfg.LogFile)
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "mathdrill.log")
	return p, store.EnsureDir(p)
}

// newContext builds the application context over the opened store.
func (d *deps) newContext(ctx context.Context) *app.Context {
	return app.New(ctx, app.Options{
		Repo: d.repo,
		Log:  d.log,
		Session: session.Config{
			Duration:     d.cfg.Session.Duration,
			InitialBatch: d.cfg.Session.InitialBatch,
			LowWater:     d.cfg.Session.LowWater,
			TopUp:        d.cfg.Session.TopUp,
		},
	})
}

// runApp opens the store and launches the TUI. A non-empty domain skips
// the mode menu and starts practice straight away.
func runApp(cmd *cobra.Command, domain string) error {
	d, err := openDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.close()

	a := d.newContext(cmd.Context())
	if domain != "" {
		dom, err := problemgen.ParseDomain(domain)
		if err != nil {
			return err
		}
		if _, err := a.StartPractice(dom); err != nil {
			return err
		}
	}

	return tui.Run(a, tui.Options{
		ExportDir: d.cfg.Export,
		Timings:   sessionscreen.Timings{ReplenishDelay: d.cfg.Session.ReplenishDelay},
	})
}
