package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"vibe-shop/internal/config"
	"vibe-shop/internal/http/handlers"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/service/payment"
	"vibe-shop/internal/transport/kafka"
)

func stubConnect(pool *pgxpool.Pool, err error) dbConnectFunc {
	return func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error) {
		return pool, err
	}
}

func noMigrate(context.Context, *pgxpool.Pool) error { return nil }

// isolateConfig resets process-wide flag and env state read by config.Load.
func isolateConfig(t *testing.T) {
	t.Helper()

	oldArgs := os.Args
	oldFlags := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = []string{"cmd"}
	t.Cleanup(func() {
		pflag.CommandLine = oldFlags
		os.Args = oldArgs
	})
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestRegisterDomainServicesAndHTTP_ProvidesServerAndHandlers(t *testing.T) {
	t.Parallel()

	c := setupHTTPContainer(t, testConfig(t))

	err := c.Invoke(func(
		srv *http.Server,
		base *handlers.Handlers,
		authH *handlers.AuthHandler,
		ordersH *handlers.OrdersHandler,
		paymentH *handlers.PaymentHandler,
		catalogH *handlers.CatalogHandler,
		reviewsH *handlers.ReviewsHandler,
	) {
		require.NotNil(t, srv)
		require.Equal(t, ":8080", srv.Addr)
		require.NotNil(t, srv.Handler)
		require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
		require.Greater(t, srv.WriteTimeout, time.Duration(0))

		for _, h := range []any{base, authH, ordersH, paymentH, catalogH, reviewsH} {
			require.NotNil(t, h)
		}
	})
	require.NoError(t, err)
}

func TestRegisterDomainServices_CardRulesFileError(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Payment.CardRulesFile = "/does/not/exist.yaml"
	c := setupHTTPContainer(t, cfg)

	err := c.Invoke(func(*payment.Classifier) {})
	require.Error(t, err)
	require.Contains(t, err.Error(), "card rules")
}

func TestNewProducer_DisabledWithoutBrokers(t *testing.T) {
	t.Parallel()

	p, err := newProducer(testConfig(t), logx.Nop())
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestRegisterCore_ProvidesDependencies(t *testing.T) {
	isolateConfig(t)

	c := dig.New()
	ctx := context.Background()

	require.NoError(t, registerCore(c, ctx))

	err := c.Invoke(func(gotCtx context.Context, logger logx.Logger, cfg *config.Config) {
		require.Equal(t, ctx, gotCtx)
		require.NotNil(t, logger)
		require.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	})
	require.NoError(t, err)
}

func TestRegisterDb_ConnectsAndMigrates(t *testing.T) {
	t.Parallel()

	c := dig.New()
	ctx := context.Background()
	cfg := testConfig(t)

	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))
	require.NoError(t, c.Provide(logx.Nop))

	stubPool := &pgxpool.Pool{}
	connect := func(
		gotCtx context.Context,
		_ logx.Logger,
		dsn string,
		retries int,
		delay time.Duration,
	) (*pgxpool.Pool, error) {
		require.Equal(t, ctx, gotCtx)
		require.Equal(t, cfg.DB.DSN(), dsn)
		require.Equal(t, dbConnectRetries, retries)
		require.Equal(t, dbConnectDelay, delay)
		return stubPool, nil
	}
	migrated := 0
	migrate := func(_ context.Context, pool *pgxpool.Pool) error {
		require.Same(t, stubPool, pool)
		migrated++
		return nil
	}

	require.NoError(t, registerDb(c, connect, migrate))

	err := c.Invoke(func(pool *pgxpool.Pool) {
		require.Same(t, stubPool, pool)
	})
	require.NoError(t, err)
	require.Equal(t, 1, migrated)
}

func TestContainerBuilder_Build_DBError(t *testing.T) {
	isolateConfig(t)

	builder := NewContainerBuilder().
		WithDBConnect(stubConnect(nil, errors.New("db failed"))).
		WithMigrate(noMigrate)

	c, err := builder.build(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)

	err = c.Invoke(func(pool *pgxpool.Pool) {
		_ = pool
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "db failed")
}

func TestContainerBuilder_MustBuild_DoesNotCallFatalOnSuccess(t *testing.T) {
	isolateConfig(t)

	builder := NewContainerBuilder().
		WithDBConnect(stubConnect(&pgxpool.Pool{}, nil)).
		WithMigrate(noMigrate).
		WithLogFatalf(func(format string, args ...interface{}) {
			require.FailNowf(t, "logFatalf must not be called", format, args...)
		})

	c := builder.MustBuild(context.Background())
	require.NotNil(t, c)
}

func TestContainerBuilder_MustBuildWorker_ProvidesNilConsumerWithoutKafka(t *testing.T) {
	isolateConfig(t)
	t.Setenv("KAFKA_BROKERS", "")

	builder := NewContainerBuilder().
		WithDBConnect(stubConnect(&pgxpool.Pool{}, nil)).
		WithMigrate(noMigrate).
		WithLogFatalf(func(format string, args ...interface{}) {
			require.FailNowf(t, "logFatalf must not be called", format, args...)
		})

	c := builder.MustBuildWorker(context.Background())

	var runErr error
	err := c.Invoke(func(ctx context.Context, logger logx.Logger, consumer *kafka.Consumer) {
		require.Nil(t, consumer)
		runErr = workerRun(ctx, nil, logger, consumer)
	})
	require.NoError(t, err)
	require.ErrorContains(t, runErr, "kafka consumer is nil")
}
