// Package cli implements the interactive shell over the directory core:
// a small REPL that searches, lists, and registers roster entries, plus
// the admin and export commands. It is the only place where error kinds
// become user-facing text.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/classhub/internal/admin"
	"github.com/dmitrijs2005/classhub/internal/config"
	"github.com/dmitrijs2005/classhub/internal/directory"
	"github.com/dmitrijs2005/classhub/internal/logging"
	"github.com/dmitrijs2005/classhub/internal/session"
	"github.com/dmitrijs2005/classhub/internal/store"
)

// App wires the directory service, the per-run session, and the admin
// gate behind the REPL commands.
type App struct {
	config  *config.Config
	logger  logging.Logger
	service *directory.Service
	sess    *session.Session
	gate    *admin.Gate
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	rowStore, err := newRowStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	adapter := directory.NewAdapter(rowStore, logger)
	service := directory.NewService(adapter, logger)

	app := &App{
		config:  c,
		logger:  logger,
		service: service,
		sess:    session.New(c.RateLimitWindow, c.RateLimitMaxAttempts),
		gate:    admin.NewGate(c.AdminSecret),
		reader:  bufio.NewReader(os.Stdin),
	}

	if c.InstructorHandle != "" {
		if err := service.Seed(ctx, c.InstructorName, c.InstructorHandle); err != nil {
			logger.Warn(ctx, "instructor seeding failed", "error", err.Error())
		}
	}

	return app, nil
}

func newRowStore(ctx context.Context, c *config.Config) (store.RowStore, error) {
	switch c.StoreDriver {
	case config.DriverPostgres:
		return store.NewPostgresStore(ctx, c.DatabaseDSN)
	case config.DriverMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewSheetsStore(ctx, c.CredentialsFile, c.SpreadsheetID, int64(c.WorksheetIndex))
	}
}

func (a *App) isAdmin() bool {
	return a.sess.IsAdmin()
}

func (a *App) getStatus() string {
	if a.isAdmin() {
		return "(admin)"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Class directory CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// profileURL renders the display-only link for an entry.
func (a *App) profileURL(e *directory.Entry) string {
	return a.config.ProfileBaseURL + e.Handle
}

func (a *App) out() io.Writer {
	return os.Stdout
}
