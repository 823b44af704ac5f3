package router

import (
	"net/http"
	"strings"

	"ebuney/internal/auth"
	"ebuney/internal/handler"
	"ebuney/internal/middleware"
	"ebuney/internal/model"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	orderHandler *handler.OrderHandler,
	profileHandler *handler.ProfileHandler,
	authSvc *auth.Service,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	authenticated := middleware.Authenticate(authSvc, logger)
	sellerOnly := middleware.RequireRole(authSvc, model.RoleSeller, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: catalogue reads are public, image upload is
	// seller-gated.
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			sellerOnly(http.HandlerFunc(productHandler.UploadImage)).ServeHTTP(w, r)
			return
		}
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes: any authenticated account can shop.
	mux.Handle("/api/cart", authenticated(http.HandlerFunc(cartHandler.Get)))
	cartItemsHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && (r.URL.Path == "/api/cart/items" || r.URL.Path == "/api/cart/items/") {
			cartHandler.AddItem(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/cart/items/") && r.URL.Path != "/api/cart/items/" {
			switch r.Method {
			case http.MethodPut:
				cartHandler.UpdateItem(w, r)
			case http.MethodDelete:
				cartHandler.RemoveItem(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.Handle("/api/cart/items", authenticated(http.HandlerFunc(cartItemsHandler)))
	mux.Handle("/api/cart/items/", authenticated(http.HandlerFunc(cartItemsHandler)))

	// Profile read, used to prefill the checkout address form.
	mux.Handle("/api/profile", authenticated(http.HandlerFunc(profileHandler.Get)))

	// Checkout: the order fan-out workflow.
	mux.Handle("/api/checkout", authenticated(http.HandlerFunc(checkoutHandler.PlaceOrder)))

	// Order reads. The buyer/seller party check happens in the service.
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			orderHandler.GetByID(w, r)
			return
		}

		orderHandler.ListMine(w, r)
	}
	mux.Handle("/api/orders", authenticated(http.HandlerFunc(orderRouteHandler)))
	mux.Handle("/api/orders/", authenticated(http.HandlerFunc(orderRouteHandler)))

	// Seller dashboard reads.
	mux.Handle("/api/seller/orders", sellerOnly(http.HandlerFunc(orderHandler.ListForSeller)))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
