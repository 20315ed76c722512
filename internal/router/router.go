package router

import (
	"net/http"

	"sportswear-shop/internal/handler"
	"sportswear-shop/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	systemHandler *handler.SystemHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Liveness message; "/" matches everything, so unknown paths 404 here.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		systemHandler.Root(w, r)
	})

	mux.HandleFunc("/test", systemHandler.Diagnostics)

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products", "/api/products/":
			if r.Method == http.MethodPost {
				productHandler.Create(w, r)
				return
			}
			productHandler.List(w, r)
		case "/api/products/seed":
			productHandler.Seed(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Order handler function
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" && r.URL.Path != "/api/orders/" {
			http.NotFound(w, r)
			return
		}
		if r.Method == http.MethodPost {
			orderHandler.Create(w, r)
			return
		}
		orderHandler.List(w, r)
	}

	// Register order routes (both with and without trailing slash)
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
