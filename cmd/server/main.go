package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/authsvc/internal/api"
	"github.com/dmitrymomot/authsvc/internal/storage/postgres"
	"github.com/dmitrymomot/authsvc/pkg/auth"
	"github.com/dmitrymomot/authsvc/pkg/config"
	"github.com/dmitrymomot/authsvc/pkg/email"
	"github.com/dmitrymomot/authsvc/pkg/httpserver"
	"github.com/dmitrymomot/authsvc/pkg/jwt"
	"github.com/dmitrymomot/authsvc/pkg/logger"
	"github.com/dmitrymomot/authsvc/pkg/pg"
)

type appConfig struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"json"`

	JWTSecret  string        `env:"JWT_SECRET,required"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
	ResetURL      string        `env:"PASSWORD_RESET_URL" envDefault:"http://localhost:5173/reset-password"`
}

func main() {
	var (
		appCfg  appConfig
		pgCfg   pg.Config
		mailCfg email.Config
		httpCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&pgCfg)
	config.MustLoad(&mailCfg)
	config.MustLoad(&httpCfg)

	log := logger.New(
		logger.WithLevel(appCfg.LogLevel),
		logger.WithFormat(appCfg.LogFormat),
		logger.WithService("authsvc"),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		log.Error("failed to apply migrations", logger.Error(err))
		os.Exit(1)
	}

	sender, err := newEmailSender(mailCfg, log)
	if err != nil {
		log.Error("failed to configure mail delivery", logger.Error(err))
		os.Exit(1)
	}
	mailer := email.NewPasswordResetMailer(sender,
		email.WithExpiryNotice(expiryNotice(appCfg.ResetTokenTTL)),
	)

	tokens, err := jwt.New(appCfg.JWTSecret,
		jwt.WithTTL(appCfg.SessionTTL),
		jwt.WithIssuer("authsvc"),
	)
	if err != nil {
		log.Error("failed to configure session tokens", logger.Error(err))
		os.Exit(1)
	}

	svc := auth.NewService(postgres.NewUserStore(pool), mailer,
		auth.WithLogger(log),
		auth.WithResetTokenTTL(appCfg.ResetTokenTTL),
		auth.WithResetBaseURL(appCfg.ResetURL),
	)

	handler := api.NewHandler(svc, tokens, api.WithLogger(log))
	router := api.NewRouter(handler, tokens, api.RouterConfig{
		Logger:       log,
		HealthChecks: []func(context.Context) error{pg.Healthcheck(pool)},
	})

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

// newEmailSender picks Postmark when a server token is configured and falls
// back to the filesystem dev sender otherwise.
func newEmailSender(cfg email.Config, log *slog.Logger) (email.EmailSender, error) {
	if cfg.PostmarkServerToken != "" {
		return email.NewPostmarkClient(cfg)
	}
	log.Warn("postmark is not configured, writing outgoing mail to disk",
		slog.String("dir", cfg.DevMailDir),
	)
	return email.NewDevSender(cfg.DevMailDir), nil
}

func expiryNotice(ttl time.Duration) string {
	if ttl == time.Hour {
		return "1 hour"
	}
	return ttl.String()
}
