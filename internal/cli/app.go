package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/timediary/internal/config"
	"github.com/dmitrijs2005/timediary/internal/dbx"
	"github.com/dmitrijs2005/timediary/internal/logging"
	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/repositories/diaries"
	"github.com/dmitrijs2005/timediary/internal/repositories/sessions"
	"github.com/dmitrijs2005/timediary/internal/repositories/stats"
	"github.com/dmitrijs2005/timediary/internal/repositories/users"
	"github.com/dmitrijs2005/timediary/internal/services"
	"github.com/dmitrijs2005/timediary/internal/storage"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	identity services.IdentityService
	content  services.ContentService
	stats    services.StatsService

	currentUser *models.User
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	// First run: write the default records in one transaction so a partial
	// seed never becomes visible.
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s := storage.NewSQLiteStore(tx)
		if err := users.NewStoreRepository(s).EnsureSeeded(ctx); err != nil {
			return err
		}
		if err := diaries.NewStoreRepository(s).EnsureSeeded(ctx); err != nil {
			return err
		}
		if err := sessions.NewStoreRepository(s).EnsureSeeded(ctx); err != nil {
			return err
		}
		return stats.NewStoreRepository(s).EnsureSeeded(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store := storage.NewSQLiteStore(db)
	userRepo := users.NewStoreRepository(store)
	diaryRepo := diaries.NewStoreRepository(store)
	sessionRepo := sessions.NewStoreRepository(store)
	statsRepo := stats.NewStoreRepository(store)

	a := &App{
		config:   cfg,
		db:       db,
		identity: services.NewIdentityService(userRepo, sessionRepo, statsRepo, log),
		content:  services.NewContentService(diaryRepo, log),
		stats:    services.NewStatsService(statsRepo),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	// Pick up the session saved by a previous run.
	if user, err := a.identity.Current(ctx); err == nil {
		a.currentUser = user
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}
