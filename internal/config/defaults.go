package config

import "time"

const defaultPort = 8080

const defaultOperationTimeout = 3 * time.Second

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "vibe_shop",
}

var defaultAuth = Auth{
	JWTSecret: "supersecretkey",
	TokenTTL:  30 * time.Minute,
	SeedAdmin: true,
}

var defaultStorage = Storage{
	ProductsFile: "static/products.json",
	ImagesRoot:   "public/images",
	ImagesSubdir: "tees/images",
}

var defaultDepot = Depot{
	Latitude:  55.0084,
	Longitude: 82.9357,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        5 * time.Minute,
	MaxClients: 10000,
}

var defaultDebug = Debug{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

var defaultKafka = Kafka{
	PaymentsTopic: "payments",
	GroupID:       "vibe-shop-worker",
}

var defaultCORS = CORS{
	AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultAuth returns the default auth settings.
func DefaultAuth() Auth {
	return defaultAuth
}

// DefaultStorage returns the default file locations.
func DefaultStorage() Storage {
	return defaultStorage
}

// DefaultDepot returns the default depot location.
func DefaultDepot() Depot {
	return defaultDepot
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultKafka returns the default kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultCORS returns the default CORS settings.
func DefaultCORS() CORS {
	c := defaultCORS
	c.AllowedOrigins = append([]string(nil), defaultCORS.AllowedOrigins...)
	return c
}
