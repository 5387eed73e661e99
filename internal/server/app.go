// Package server initializes and runs the chat backend. It opens the
// database pool, runs migrations, wires the services, handles graceful
// shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/logging"
	"github.com/jand6793/chat-website-backend/internal/server/config"
	"github.com/jand6793/chat-website-backend/internal/server/httpapi"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/repomanager"
	"github.com/jand6793/chat-website-backend/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	db, err := dbx.Open(cfg.DatabaseDSN, cfg.PoolMinConns, cfg.PoolMaxConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbx.Ping(ctx, db); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	authService := services.NewAuthService(db, rm, cfg)
	userService := services.NewUserService(db, rm)
	messageService := services.NewMessageService(db, rm)
	conversationService := services.NewConversationService(db, rm)

	server := httpapi.NewServer(cfg.EndpointAddr, logger,
		authService, userService, messageService, conversationService)

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
	if err := dbx.Close(app.db); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
}
