// Command sessiondemo serves the cookie session demo application.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/cookiesession/app/demo"
	"github.com/dmitrymomot/cookiesession/core/config"
	"github.com/dmitrymomot/cookiesession/core/logger"
	"github.com/dmitrymomot/cookiesession/integration/database/redis"
	"github.com/dmitrymomot/cookiesession/middleware"
)

func main() {
	var cfg demo.Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("application stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg demo.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []demo.AppOption{demo.WithLogger(log)}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis, log)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		log.Info("using redis for login rate limiting", logger.Component("app"))
		opts = append(opts, demo.WithRedis(client))
	}

	app, err := demo.New(cfg, opts...)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}

func newLogger(cfg demo.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithContextValue("request_id", middleware.RequestIDKey{}),
	}

	if cfg.IsProduction() {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}

	if cfg.Log.Level != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.Log.Level)))
	}
	if strings.EqualFold(cfg.Log.Format, "json") {
		opts = append(opts, logger.WithJSONFormatter())
	}

	return logger.New(opts...)
}
