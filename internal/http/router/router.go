package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"vibe-shop/internal/http/handlers"
	mw "vibe-shop/internal/http/middleware"
	"vibe-shop/internal/logx"
)

const requestTimeout = 15 * time.Second

// Deps holds everything the router mounts.
type Deps struct {
	Logger  logx.Logger
	Base    *handlers.Handlers
	Auth    *handlers.AuthHandler
	Orders  *handlers.OrdersHandler
	Payment *handlers.PaymentHandler
	Catalog *handlers.CatalogHandler
	Reviews *handlers.ReviewsHandler

	Authn *mw.Auth
	// RateLimit is optional.
	RateLimit func(http.Handler) http.Handler

	CORSOrigins []string
	// ImagesRoot is served under /images; empty disables static files.
	ImagesRoot string
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logx.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if d.RateLimit != nil {
		r.Use(d.RateLimit)
	}
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/", d.Base.Root)
	r.Get("/health/live", d.Base.HealthLive)
	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))

	r.Post("/register", d.Auth.Register)
	r.Post("/token", d.Auth.Token)
	r.Get("/me", d.Auth.Me)

	r.Get("/products", d.Catalog.Products)
	r.Post("/delivery-eta", d.Orders.DeliveryEta)
	r.With(d.Authn.OptionalUser).Post("/checkout", d.Orders.Checkout)
	r.Post("/pay-mock", d.Payment.Pay)
	r.With(d.Authn.RequireUser).Get("/my-orders", d.Orders.MyOrders)

	r.Get("/reviews/{product_id}", d.Reviews.List)
	r.Post("/reviews/{product_id}", d.Reviews.Add)

	r.Route("/admin", func(r chi.Router) {
		r.Use(d.Authn.RequireAdmin)

		r.Get("/orders", d.Orders.AdminOrders)
		r.Get("/payments", d.Orders.AdminPayments)
		r.Get("/products", d.Catalog.AdminProducts)
		r.Put("/products/{index}", d.Catalog.UpdateProduct)
		r.Post("/products/{pid}/images", d.Catalog.UploadImages)
		r.Delete("/products/{pid}/images", d.Catalog.DeleteImages)
		r.Delete("/products/{pid}/images/{filename}", d.Catalog.DeleteImage)
	})

	if d.ImagesRoot != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(d.ImagesRoot))))
	}

	r.NotFound(http.HandlerFunc(d.Base.NotFound))
	r.MethodNotAllowed(http.HandlerFunc(d.Base.MethodNotAllowed))

	return r
}
