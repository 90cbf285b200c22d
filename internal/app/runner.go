package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"vibe-shop/internal/config"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/service/auth"
	"vibe-shop/internal/service/catalog"
	"vibe-shop/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner serving the API container.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container
// and blocks until its context is done.
func (r *Runner) MustRun(container *dig.Container) {
	logger := containerLogger(container)
	err := r.runFn(container)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.Nop()
	}
	return logger
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Cfg      *config.Config
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Server   *http.Server
	Debug    *http.Server `name:"debug_server" optional:"true"`
	Auth     *auth.Service
	Images   *catalog.ImageDir
	Producer *kafka.Producer `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	if err := bootstrap(in); err != nil {
		closeResources(in)
		return err
	}

	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "http server", errCh)
	if in.Debug != nil {
		startServer(in.Debug, in.Logger, "debug server", errCh)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down vibe-shop")
		runErr = in.Ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Debug != nil {
		gracefulShutdown(in.Debug, in.Logger, time.Second)
	}
	closeResources(in)
	return runErr
}

// bootstrap seeds the admin account and product images.
func bootstrap(in runIn) error {
	if in.Cfg.Auth.SeedAdmin && in.Auth != nil {
		if err := in.Auth.EnsureAdmin(in.Ctx); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}
	if src := in.Cfg.Storage.FrontImagesDir; src != "" && in.Images != nil {
		n, err := in.Images.SyncFrom(src)
		if err != nil {
			return fmt.Errorf("sync images: %w", err)
		}
		if n > 0 {
			in.Logger.Info("product images copied", logx.Int("count", n), logx.String("from", src))
		}
	}
	return nil
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info(name+" listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s: %w", name, err)
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(in runIn) {
	if in.Producer != nil {
		if err := in.Producer.Close(); err != nil {
			in.Logger.Error("kafka producer close error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
	_ = in.Logger.Sync()
}
