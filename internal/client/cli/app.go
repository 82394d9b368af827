package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/guestkeeper/internal/client/browser"
	"github.com/dmitrijs2005/guestkeeper/internal/client/client"
	"github.com/dmitrijs2005/guestkeeper/internal/client/config"
	"github.com/dmitrijs2005/guestkeeper/internal/client/guestlist"
	"github.com/dmitrijs2005/guestkeeper/internal/client/publish"
	"github.com/dmitrijs2005/guestkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/guestkeeper/internal/client/services"
	"github.com/dmitrijs2005/guestkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	remote  client.ArrivalStore
	guests  *services.GuestService
	exports *services.ExportService
	logger  logging.Logger
	in      io.Reader

	mu     sync.Mutex
	mode   Mode
	filter guestlist.FilterState
}

// NewApp opens the local database and wires the services. With no server
// address the console runs against an in-process arrival store.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.LocalDBPath, "error", err.Error())
		return nil, err
	}

	var remote client.ArrivalStore
	mode := ModeOffline
	if strings.TrimSpace(c.ServerEndpointAddr) == "" {
		remote = client.NewMemoryStore()
		mode = ModeDisabled
	} else {
		remote = client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	}

	gs := services.NewGuestService(metadata.NewSQLiteRepository(db), remote,
		services.WithLogger(logger),
		services.WithDefaultTitle(c.DefaultTitle),
		services.WithTransactions(db),
	)

	opts := []services.ExportOption{
		services.WithExportLogger(logger),
		services.WithOpener(browser.Open),
	}
	if c.S3Bucket != "" {
		p, err := publish.NewS3Publisher(publish.S3Config{
			Bucket:   c.S3Bucket,
			Region:   c.S3Region,
			Endpoint: c.S3Endpoint,
			User:     c.S3User,
			Password: c.S3Password,
		})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		opts = append(opts, services.WithPublisher(p))
	}
	es := services.NewExportService(gs, c.ExportDir, opts...)

	return &App{
		config:  c,
		db:      db,
		remote:  remote,
		guests:  gs,
		exports: es,
		logger:  logger.With("module", "cli"),
		in:      os.Stdin,
		mode:    mode,
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, fmt.Sprintf("switched to %s mode", mode))
	}
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s)", a.Mode())
}

// Run loads the guest list, reconciles arrivals in the background and
// serves the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	a.guests.Load(ctx)

	var bg sync.WaitGroup
	watchCtx, stop := context.WithCancel(ctx)
	defer func() {
		stop()
		bg.Wait()
	}()

	if a.Mode() != ModeDisabled {
		bg.Add(2)
		go func() {
			defer bg.Done()
			a.guests.ReconcileArrivals(watchCtx)
		}()
		go func() {
			defer bg.Done()
			a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)
		}()
	}

	printlnFn(fmt.Sprintf("%s (type 'help' for commands)", a.guests.Title()))
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
}

func (a *App) close(ctx context.Context) {
	a.guests.Wait()
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "closing database", "error", err.Error())
	}
}

// StartOnlineStatusWatcher probes the arrival server every interval and
// flips the prompt between online and offline. It never reconciles.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.probe(ctx)
	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	h, err := a.remote.Health(ctx)
	if err != nil || !h.OK {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
