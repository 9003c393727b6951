package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ferdiebergado/leavekit/internal/auth"
	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/leave"
	"github.com/ferdiebergado/leavekit/internal/mcp"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
	"github.com/ferdiebergado/leavekit/internal/platform/hash"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
	"github.com/ferdiebergado/leavekit/internal/platform/router"
	"github.com/ferdiebergado/leavekit/internal/platform/validation"
)

type Providers struct {
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
}

// services groups the domain services behind their interfaces so both
// transports wire the same object graph.
type services struct {
	employees employee.Service
	leaves    leave.Service
}

func newServices(dbConn *sql.DB, cfg *config.Config, txManager db.TxManager) *services {
	employeeModule := employee.NewModule(dbConn, cfg.Leave)
	leaveModule := leave.NewModule(dbConn, employeeModule.Service(), txManager)
	return &services{
		employees: employeeModule.Service(),
		leaves:    leaveModule.Service(),
	}
}

// App serves the MCP server over streamable HTTP behind bearer-token
// authentication.
type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	signer          jwt.Signer
	validator       validation.Validator
	hasher          hash.Hasher
	router          router.Router
	txManager       db.TxManager
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	svcs := newServices(a.db, a.config, a.txManager)

	authModule := auth.NewModule(a.db, a.hasher, a.signer, a.config.JWT)
	mountAuthRoutes(a.router, authModule.Handler(), a.validator, a.config.Server.MaxBodyBytes)

	mcpSrv := mcp.New(a.config.MCP, svcs.employees, svcs.leaves)
	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv)
	mountMCPRoutes(a.router, streamable, a.signer)

	mountHealthRoute(a.router)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, dbConn *sql.DB, providers *Providers, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	txMgr := db.NewSQLTxManager(dbConn)

	return &App{
		config:          cfg,
		db:              dbConn,
		txManager:       txMgr,
		signer:          providers.Signer,
		validator:       providers.Validator,
		hasher:          providers.Hasher,
		router:          providers.Router,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
