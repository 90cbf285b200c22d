package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"vibe-shop/internal/config"
	"vibe-shop/internal/http/debugserver"
	"vibe-shop/internal/http/handlers"
	mw "vibe-shop/internal/http/middleware"
	"vibe-shop/internal/http/middleware/ratelimit"
	"vibe-shop/internal/http/router"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/repository"
	"vibe-shop/internal/service/auth"
	"vibe-shop/internal/service/catalog"
	"vibe-shop/internal/service/delivery"
	"vibe-shop/internal/service/orders"
	"vibe-shop/internal/service/payment"
	"vibe-shop/internal/service/reviews"
	"vibe-shop/internal/transport/kafka"
)

const (
	dbConnectRetries = 10
	dbConnectDelay   = time.Second
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

type migrateFunc func(context.Context, *pgxpool.Pool) error

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	migrate   migrateFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		migrate:   repository.Migrate,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn migrateFunc) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := container.Provide(provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		newLogger,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate migrateFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), dbConnectRetries, dbConnectDelay)
		if err != nil {
			return nil, err
		}
		if err := migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func newEstimator(cfg *config.Config) *delivery.Estimator {
	return delivery.NewEstimator(delivery.Depot{
		Latitude:  cfg.Depot.Latitude,
		Longitude: cfg.Depot.Longitude,
	})
}

func newClassifier(cfg *config.Config) (*payment.Classifier, error) {
	rules := payment.DefaultCardRules()
	if path := cfg.Payment.CardRulesFile; path != "" {
		loaded, err := payment.LoadCardRulesFile(path)
		if err != nil {
			return nil, fmt.Errorf("card rules: %w", err)
		}
		rules = loaded
	}
	return payment.NewClassifier(rules), nil
}

type paymentIn struct {
	dig.In

	Cfg        *config.Config
	Logger     logx.Logger
	Metrics    metricsIn
	Classifier *payment.Classifier
	Payments   *repository.PaymentRepo
	Orders     *repository.OrderRepo
	Estimator  *delivery.Estimator
	Producer   *kafka.Producer
}

func newPaymentService(in paymentIn) *payment.Service {
	d := payment.Deps{
		Classifier:      in.Classifier,
		Policy:          payment.Policy{RequireLuhn: in.Cfg.Payment.RequireLuhn},
		Payments:        in.Payments,
		Orders:          in.Orders,
		Estimator:       in.Estimator,
		Logger:          in.Logger,
		PaymentsTotal:   in.Metrics.PaymentsTotal,
		PublishFailures: in.Metrics.PaymentPublishFailures,
		Timeout:         in.Cfg.OperationTimeout,
	}
	// a nil *Producer must not reach the interface
	if in.Producer != nil {
		d.Publisher = in.Producer
	}
	return payment.NewService(d)
}

func newProducer(cfg *config.Config, logger logx.Logger) (*kafka.Producer, error) {
	if !cfg.Kafka.Enabled() {
		return nil, nil
	}
	return kafka.NewProducer(logger, cfg.Kafka.Brokers, cfg.Kafka.PaymentsTopic)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewUserRepo,
		repository.NewOrderRepo,
		repository.NewPaymentRepo,
		repository.NewReviewRepo,
		newEstimator,
		newClassifier,
		newProducer,
		func(cfg *config.Config) (*auth.Tokens, error) {
			return auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		},
		func(cfg *config.Config, repo *repository.UserRepo, tokens *auth.Tokens, logger logx.Logger) *auth.Service {
			return auth.NewService(repo, tokens, logger, cfg.OperationTimeout)
		},
		func(
			cfg *config.Config,
			repo *repository.OrderRepo,
			payments *repository.PaymentRepo,
			est *delivery.Estimator,
			logger logx.Logger,
			m metricsIn,
		) *orders.Service {
			return orders.NewService(repo, payments, est, logger, m.DeliveryEtaDays, cfg.OperationTimeout)
		},
		newPaymentService,
		func(cfg *config.Config, repo *repository.ReviewRepo) *reviews.Service {
			return reviews.NewService(repo, cfg.OperationTimeout)
		},
		func(cfg *config.Config) *catalog.FileStore {
			return catalog.NewFileStore(cfg.Storage.ProductsFile)
		},
		func(cfg *config.Config) *catalog.ImageDir {
			return catalog.NewImageDir(cfg.Storage.ImagesDir(), cfg.Storage.ImagesURLPrefix())
		},
		catalog.NewService,
	)
}

type routerIn struct {
	dig.In

	Cfg       *config.Config
	Logger    logx.Logger
	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Orders    *handlers.OrdersHandler
	Payment   *handlers.PaymentHandler
	Catalog   *handlers.CatalogHandler
	Reviews   *handlers.ReviewsHandler
	Authn     *mw.Auth
	RateLimit *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	var limit func(http.Handler) http.Handler
	if in.RateLimit != nil {
		limit = in.RateLimit.Handler()
	}
	return router.New(router.Deps{
		Logger:      in.Logger,
		Base:        in.Base,
		Auth:        in.Auth,
		Orders:      in.Orders,
		Payment:     in.Payment,
		Catalog:     in.Catalog,
		Reviews:     in.Reviews,
		Authn:       in.Authn,
		RateLimit:   limit,
		CORSOrigins: in.Cfg.CORS.AllowedOrigins,
		ImagesRoot:  in.Cfg.Storage.ImagesRoot,
	})
}

type debugServerOut struct {
	dig.Out

	Server *http.Server `name:"debug_server"`
}

func newDebugServer(cfg *config.Config) debugServerOut {
	if !cfg.Debug.Enabled {
		return debugServerOut{}
	}
	return debugServerOut{Server: debugserver.NewServer(cfg.Debug.Addr, debugserver.Config{
		User: cfg.Debug.User,
		Pass: cfg.Debug.Pass,
	})}
}

func newHTTPServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// image uploads and the request timeout fit into this
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		handlers.NewAuthUsecase,
		handlers.NewAuthHandler,
		handlers.NewOrdersUsecase,
		handlers.NewOrdersHandler,
		handlers.NewPaymentUsecase,
		handlers.NewPaymentHandler,
		handlers.NewCatalogUsecase,
		handlers.NewCatalogHandler,
		handlers.NewReviewsUsecase,
		handlers.NewReviewsHandler,
		func(logger logx.Logger, svc *auth.Service) *mw.Auth {
			return mw.NewAuth(logger, svc)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newHTTPServer,
		newDebugServer,
	)
}
