package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ferdiebergado/leavekit/internal/auth"
	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/mcp"
	"github.com/ferdiebergado/leavekit/internal/middleware"
	"github.com/ferdiebergado/leavekit/internal/pkg/logging"
	"github.com/ferdiebergado/leavekit/internal/pkg/message"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
	"github.com/ferdiebergado/leavekit/internal/platform/hash"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
	"github.com/ferdiebergado/leavekit/internal/platform/router"
	"github.com/ferdiebergado/leavekit/internal/platform/validation"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" {
		if _, err := os.Stat(".env"); err == nil {
			if err := env.Load(".env"); err != nil {
				return fmt.Errorf("load env: %w", err)
			}
		}
	}

	// Logs go to stderr on both transports: on stdio the protocol owns
	// stdout.
	logging.SetupLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"), os.Stderr)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.Connect(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(signalCtx, dbConn); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	switch cfg.MCP.Transport {
	case config.TransportStdio, "":
		return runStdio(signalCtx, cfg, dbConn)
	case config.TransportHTTP:
		return runHTTP(signalCtx, stop, cfg, dbConn)
	default:
		return fmt.Errorf("unsupported MCP transport: %q", cfg.MCP.Transport)
	}
}

// runStdio serves the MCP protocol over stdin/stdout until the client
// disconnects or a shutdown signal arrives. Desktop MCP clients launch
// the server this way.
func runStdio(signalCtx context.Context, cfg *config.Config, dbConn *sql.DB) error {
	txManager := db.NewSQLTxManager(dbConn)
	svcs := newServices(dbConn, cfg, txManager)
	mcpSrv := mcp.New(cfg.MCP, svcs.employees, svcs.leaves)

	slog.Info("Serving MCP over stdio...", "name", cfg.MCP.Name, "version", cfg.MCP.Version)

	stdio := mcpserver.NewStdioServer(mcpSrv)
	if err := stdio.Listen(signalCtx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("serve stdio: %w", err)
	}
	return nil
}

func runHTTP(signalCtx context.Context, stop context.CancelFunc, cfg *config.Config, dbConn *sql.DB) error {
	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	providers := setupProviders(cfg, securityKey)

	if err := registerEnvClient(signalCtx, cfg, dbConn, providers); err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS,
		middleware.CheckContentType,
	}
	apiServer := New(cfg, dbConn, providers, middlewares)

	apiErr := make(chan error, 1)
	go func() {
		apiErr <- apiServer.Start(signalCtx)
	}()

	select {
	case <-signalCtx.Done():
		slog.Info("Shutdown signal received.")
		stop()
	case err := <-apiErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	}

	return apiServer.Shutdown()
}

// registerEnvClient provisions the API client configured through
// MCP_CLIENT_ID and MCP_CLIENT_SECRET so a fresh install can obtain a
// token without manual database access.
func registerEnvClient(ctx context.Context, cfg *config.Config, dbConn *sql.DB, providers *Providers) error {
	clientID, ok := os.LookupEnv("MCP_CLIENT_ID")
	if !ok {
		return nil
	}
	clientSecret, ok := os.LookupEnv("MCP_CLIENT_SECRET")
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, "MCP_CLIENT_SECRET")
	}

	authModule := auth.NewModule(dbConn, providers.Hasher, providers.Signer, cfg.JWT)
	if err := authModule.Service().RegisterClient(ctx, clientID, "Default API client", clientSecret); err != nil {
		return fmt.Errorf("register api client: %w", err)
	}

	slog.Info("API client registered.", "client_id", clientID)
	return nil
}

func setupProviders(cfg *config.Config, securityKey string) *Providers {
	signer := jwt.NewGolangJWTSigner(cfg.JWT, securityKey)
	hasher := hash.NewArgon2Hasher(cfg.Argon2, securityKey)
	validator := validation.NewGoPlaygroundValidator()
	rtr := router.NewGoexpressRouter()
	return &Providers{
		Signer:    signer,
		Hasher:    hasher,
		Validator: validator,
		Router:    rtr,
	}
}
