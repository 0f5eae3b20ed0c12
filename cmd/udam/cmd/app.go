package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CyberSolo/UDAM/api/openapi"
	"github.com/CyberSolo/UDAM/internal/api/handlers"
	"github.com/CyberSolo/UDAM/internal/api/middleware"
	"github.com/CyberSolo/UDAM/internal/auth"
	"github.com/CyberSolo/UDAM/internal/config"
	"github.com/CyberSolo/UDAM/internal/engine"
	"github.com/CyberSolo/UDAM/internal/notify"
	"github.com/CyberSolo/UDAM/internal/store"
	"github.com/CyberSolo/UDAM/internal/vault"
	"github.com/CyberSolo/UDAM/pkg/logger"
)

func loadConfig() (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log, closer := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	return cfg, log, closer, nil
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.DatabaseConfig) (store.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := store.NewPostgresStore(ctx, cfg.DSN(), store.WithPoolSize(cfg.PoolSize))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		return pg, pg.Close, nil
	default:
		return store.NewMemoryStore(), func() {}, nil
	}
}

// newEngine wires the engine with its vault, notifier and lifecycle policy.
func newEngine(cfg *config.Config, st store.Store, log *slog.Logger) (*engine.Engine, error) {
	key := cfg.Vault.MasterKey
	if key == "" {
		generated, err := vault.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("generating vault key: %w", err)
		}
		key = generated
		log.Warn("vault.master_key not set, using an ephemeral key; sealed credentials will not survive a restart")
	}
	sealer, err := vault.New(key)
	if err != nil {
		return nil, fmt.Errorf("creating vault: %w", err)
	}

	var n notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		n = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	} else {
		n = notify.NewNoOpNotifier(log)
	}

	return engine.NewEngine(st, n, sealer,
		engine.WithLogger(log),
		engine.WithDisputeWindow(cfg.Orders.DisputeWindow),
		engine.WithCounterWindow(cfg.Orders.CounterWindow),
		engine.WithAutoConfirmLimit(cfg.Orders.AutoConfirmLimit),
		engine.WithSweepBatch(cfg.Schedule.SweepBatch),
	), nil
}

func newTokens(cfg *config.AuthConfig) (*auth.Tokens, error) {
	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.Issuer, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("creating token issuer: %w", err)
	}
	return tokens, nil
}

// newHTTPServer builds the Echo server with every route registered.
func newHTTPServer(
	cfg *config.Config,
	mp handlers.Marketplace,
	tokens *auth.Tokens,
	log *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	if cfg.RateLimit.Enabled {
		e.Use(middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst).Middleware())
	}

	health := handlers.NewHealthHandler(mp)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("UDAM API", Version)
	humaCfg.Info.Description = "Marketplace order lifecycle, escrow and reputation API."
	humaCfg.OpenAPIPath = ""
	humaCfg.DocsPath = ""
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
		"adminToken": {
			Type: "apiKey",
			In:   "header",
			Name: auth.AdminTokenHeader,
		},
	}
	api := humaecho.New(e, humaCfg)
	api.UseMiddleware(auth.NewAuthenticator(tokens, cfg.Auth.AdminToken).Middleware(api))

	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(mp))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(mp), cfg.Orders.DevConfirm)
	handlers.RegisterDisputeRoutes(api, handlers.NewDisputesHandler(mp))
	handlers.RegisterReviewRoutes(api, handlers.NewReviewsHandler(mp))
	handlers.RegisterSummaryRoutes(api, handlers.NewSummaryHandler(mp))
	handlers.RegisterAdminRoutes(api, handlers.NewAdminHandler(mp))

	openapi.RegisterRoutes(e, api)

	return e
}

// commandContext bounds a one-shot command by timeout and cancels it on
// interrupt.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}
