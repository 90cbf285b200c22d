package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"vibe-shop/internal/config"
	"vibe-shop/internal/logx"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Port:             8080,
		LogLevel:         "info",
		OperationTimeout: time.Second,
		DB:               config.DefaultDB(),
		Auth:             config.DefaultAuth(),
		Storage: config.Storage{
			ProductsFile: filepath.Join(dir, "products.json"),
			ImagesRoot:   filepath.Join(dir, "images"),
			ImagesSubdir: "tees/images",
		},
		Depot:     config.DefaultDepot(),
		RateLimit: config.DefaultRateLimit(),
		Debug:     config.Debug{Addr: "127.0.0.1:0"},
		Kafka:     config.DefaultKafka(),
		CORS:      config.DefaultCORS(),
	}
}

// setupHTTPContainer wires services and HTTP on top of stub core providers.
func setupHTTPContainer(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", logx.Nop},
		{"config", func() *config.Config { return cfg }},
		{"pgxpool", func() *pgxpool.Pool { return &pgxpool.Pool{} }},
		{"metrics", newMetrics},
	}
	for _, p := range providers {
		require.NoErrorf(t, c.Provide(p.provider), "provide %s", p.name)
	}

	require.NoError(t, registerDomainServices(c))
	require.NoError(t, registerHTTP(c))
	return c
}
