package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	httpadp "realestate-backend/internal/adapter/http"
	mw "realestate-backend/internal/adapter/middleware"
	"realestate-backend/internal/adapter/repository/gormrepo"
	"realestate-backend/internal/config"
	"realestate-backend/internal/infrastructure/cache"
	"realestate-backend/internal/infrastructure/db"
	"realestate-backend/internal/infrastructure/logger"
	"realestate-backend/internal/infrastructure/metrics"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			gdb, err := db.OpenGorm(cfg, log)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}

			var rdb *redis.Client
			if cfg.RedisAddr != "" {
				rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
				if err != nil {
					return err
				}
				defer rdb.Close()
				log.Info("redis: connected, idempotency enabled", "addr", cfg.RedisAddr)
			}

			e, err := newServer(cfg, log, gdb, rdb, metrics.New())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				addr := ":" + cfg.AppPort
				log.Info("listening", "addr", addr)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			log.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(sctx)
		},
	}
}

// newServer assembles middleware and routes. A nil rdb disables idempotency.
func newServer(cfg *config.Config, log *logger.Logger, gdb *gorm.DB, rdb *redis.Client, m *metrics.Metrics) (*echo.Echo, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.ErrorHandler(log)

	e.Use(
		middleware.Recover(),
		mw.RequestID(),
		mw.RequestLogger(log),
		mw.Metrics(m),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID, mw.HeaderIdempotencyKey},
		}),
		middleware.BodyLimit("1M"),
	)
	if rdb != nil {
		e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log, m))
	}

	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	httpadp.Register(e, httpadp.NewHandlers(gormrepo.NewRepos(gdb), gormrepo.NewGormUoW(gdb), sqlDB))
	return e, nil
}
