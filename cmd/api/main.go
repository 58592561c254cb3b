// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carterperez-dev/templates/contacts-api/internal/auth"
	"github.com/carterperez-dev/templates/contacts-api/internal/avatar"
	"github.com/carterperez-dev/templates/contacts-api/internal/config"
	"github.com/carterperez-dev/templates/contacts-api/internal/contact"
	"github.com/carterperez-dev/templates/contacts-api/internal/core"
	"github.com/carterperez-dev/templates/contacts-api/internal/health"
	"github.com/carterperez-dev/templates/contacts-api/internal/mail"
	"github.com/carterperez-dev/templates/contacts-api/internal/middleware"
	"github.com/carterperez-dev/templates/contacts-api/internal/server"
	"github.com/carterperez-dev/templates/contacts-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	//nolint:errcheck // .env is optional
	_ = godotenv.Load()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		logger.Warn("failed to initialize telemetry", "error", err)
	} else if cfg.Otel.Enabled {
		logger.Info("OpenTelemetry tracer initialized",
			"endpoint", cfg.Otel.Endpoint,
		)
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	healthChecks := []health.Check{{Name: "database", Checker: db}}
	if redis != nil {
		healthChecks = append(healthChecks, health.Check{Name: "redis", Checker: redis})
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "HS256",
		"expires_in", cfg.JWT.AccessTokenExpire.String(),
	)

	mailer, err := newMailSender(cfg.Mail, logger)
	if err != nil {
		return err
	}

	avatarStore, err := avatar.NewStore(ctx, cfg.Avatar)
	if err != nil {
		return err
	}
	uploader, err := avatar.NewUploader(avatarStore, cfg.Avatar.TempDir, cfg.Avatar.Size)
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)

	authSvc := auth.NewService(userSvc, jwtManager, mailer, uploader, cfg.App.BaseURL)
	authHandler := auth.NewHandler(authSvc, cfg.Avatar.MaxUploadBytes)

	contactRepo := contact.NewRepository(db.DB)
	contactSvc := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactSvc)

	healthHandler := health.NewHandler(healthChecks...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing(core.Tracer()))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))
	if cfg.RateLimit.Enabled {
		router.Use(
			middleware.NewRateLimiter(redis.Conn(), middleware.RateLimitConfig{
				Limit: middleware.PerMinute(
					cfg.RateLimit.Requests,
					cfg.RateLimit.Burst,
				),
				FailOpen: true,
			}).Handler,
		)
	}
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	if cfg.Avatar.Driver == config.AvatarDriverLocal {
		prefix := "/" + cfg.Avatar.URLPrefix + "/"
		router.Handle(prefix+"*", http.StripPrefix(
			prefix,
			http.FileServer(http.Dir(cfg.Avatar.PublicDir)),
		))
	}

	authenticator := middleware.Authenticator(jwtManager, userSvc)

	authHandler.RegisterRoutes(router, authenticator)
	contactHandler.RegisterRoutes(router, authenticator)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func newMailSender(cfg config.MailConfig, logger *slog.Logger) (mail.Sender, error) {
	if !cfg.Enabled {
		logger.Warn("mail delivery disabled, messages will be logged")
		return mail.NewLogSender(logger), nil
	}
	return mail.NewSMTPSender(cfg)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
