package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port             int
	LogLevel         string
	OperationTimeout time.Duration

	DB        DB
	Auth      Auth
	Storage   Storage
	Depot     Depot
	Payment   Payment
	RateLimit RateLimit
	Debug     Debug
	Kafka     Kafka
	CORS      CORS
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Auth stores token settings.
type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
	SeedAdmin bool
}

// Storage stores catalog file locations.
type Storage struct {
	ProductsFile string
	// ImagesRoot is served under /images.
	ImagesRoot   string
	ImagesSubdir string
	// FrontImagesDir seeds an empty image directory on startup.
	FrontImagesDir string
}

// ImagesDir is the directory holding product images.
func (s Storage) ImagesDir() string {
	return strings.TrimRight(s.ImagesRoot, "/") + "/" + strings.Trim(s.ImagesSubdir, "/")
}

// ImagesURLPrefix is the public URL prefix of product images.
func (s Storage) ImagesURLPrefix() string {
	return path.Join("/images", s.ImagesSubdir)
}

// Depot is the origin of all deliveries.
type Depot struct {
	Latitude  float64
	Longitude float64
}

// Payment stores card acceptance settings.
type Payment struct {
	RequireLuhn   bool
	CardRulesFile string
}

// RateLimit stores per-client rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxClients int
}

// Debug stores the pprof and metrics server settings.
type Debug struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Kafka stores broker settings. Publishing is off without brokers.
type Kafka struct {
	Brokers       []string
	PaymentsTopic string
	GroupID       string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// CORS stores allowed browser origins.
type CORS struct {
	AllowedOrigins []string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             defaultPort,
		LogLevel:         "info",
		OperationTimeout: defaultOperationTimeout,
		DB:               DefaultDB(),
		Auth:             DefaultAuth(),
		Storage:          DefaultStorage(),
		Depot:            DefaultDepot(),
		RateLimit:        DefaultRateLimit(),
		Debug:            defaultDebug,
		Kafka:            DefaultKafka(),
		CORS:             DefaultCORS(),
	}

	e := &envReader{}
	e.int("PORT", &cfg.Port)
	e.str("LOG_LEVEL", &cfg.LogLevel)
	e.duration("OPERATION_TIMEOUT", &cfg.OperationTimeout)

	e.str("POSTGRES_HOST", &cfg.DB.Host)
	e.port("POSTGRES_PORT", &cfg.DB.Port)
	e.str("POSTGRES_USER", &cfg.DB.User)
	e.str("POSTGRES_PASSWORD", &cfg.DB.Pass)
	e.str("POSTGRES_DB", &cfg.DB.Name)

	e.str("JWT_SECRET", &cfg.Auth.JWTSecret)
	e.duration("JWT_TTL", &cfg.Auth.TokenTTL)
	e.bool("AUTH_SEED_ADMIN", &cfg.Auth.SeedAdmin)

	e.str("PRODUCTS_FILE", &cfg.Storage.ProductsFile)
	e.str("IMAGES_ROOT", &cfg.Storage.ImagesRoot)
	e.str("IMAGES_SUBDIR", &cfg.Storage.ImagesSubdir)
	e.str("FRONT_IMAGES_DIR", &cfg.Storage.FrontImagesDir)

	e.float("DEPOT_LAT", &cfg.Depot.Latitude)
	e.float("DEPOT_LON", &cfg.Depot.Longitude)

	e.bool("PAYMENT_REQUIRE_LUHN", &cfg.Payment.RequireLuhn)
	e.str("CARD_RULES_FILE", &cfg.Payment.CardRulesFile)

	e.bool("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled)
	e.float("RATE_LIMIT_RPS", &cfg.RateLimit.Rate)
	e.int("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	e.duration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL)
	e.int("RATE_LIMIT_MAX_CLIENTS", &cfg.RateLimit.MaxClients)

	e.bool("DEBUG_ENABLED", &cfg.Debug.Enabled)
	e.str("DEBUG_ADDR", &cfg.Debug.Addr)
	e.str("DEBUG_USER", &cfg.Debug.User)
	e.str("DEBUG_PASS", &cfg.Debug.Pass)

	e.list("KAFKA_BROKERS", &cfg.Kafka.Brokers)
	e.str("KAFKA_PAYMENTS_TOPIC", &cfg.Kafka.PaymentsTopic)
	e.str("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)

	e.list("CORS_ORIGINS", &cfg.CORS.AllowedOrigins)

	if e.err != nil {
		return nil, e.err
	}

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Debug.Enabled, "debug", cfg.Debug.Enabled, "enable pprof and metrics server")
	fs.StringVar(&cfg.Storage.ProductsFile, "products", cfg.Storage.ProductsFile, "products JSON file")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Depot.Latitude < -90 || c.Depot.Latitude > 90 ||
		c.Depot.Longitude < -180 || c.Depot.Longitude > 180 {
		return fmt.Errorf("invalid depot location: %v,%v", c.Depot.Latitude, c.Depot.Longitude)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid JWT_TTL: %v", c.Auth.TokenTTL)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid OPERATION_TIMEOUT: %v", c.OperationTimeout)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	if c.Debug.Enabled && c.Debug.Addr == "" {
		return errors.New("DEBUG_ADDR is empty")
	}
	if c.Kafka.Enabled() && c.Kafka.PaymentsTopic == "" {
		return errors.New("KAFKA_PAYMENTS_TOPIC is empty")
	}
	return nil
}

// envReader collects the first parse error of a sequence of lookups.
type envReader struct {
	err error
}

func (e *envReader) lookup(key string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func (e *envReader) fail(key, v string, err error) {
	e.err = fmt.Errorf("invalid %s %q: %w", key, v, err)
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.lookup(key); ok {
		*dst = v
	}
}

func (e *envReader) int(key string, dst *int) {
	if v, ok := e.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) port(key string, dst *string) {
	if v, ok := e.lookup(key); ok {
		n, err := strconv.Atoi(v)
		if err == nil && (n <= 0 || n > 65535) {
			err = errors.New("out of range")
		}
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = v
	}
}

func (e *envReader) float(key string, dst *float64) {
	if v, ok := e.lookup(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) bool(key string, dst *bool) {
	if v, ok := e.lookup(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) duration(key string, dst *time.Duration) {
	if v, ok := e.lookup(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (e *envReader) list(key string, dst *[]string) {
	if v, ok := e.lookup(key); ok {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		*dst = out
	}
}
