package router

import (
	"net/http"
	"strings"

	"arena-store/internal/auth"
	"arena-store/internal/handler"
	"arena-store/internal/middleware"
	"arena-store/internal/repository"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Shipping *handler.ShippingHandler
	Banner   *handler.BannerHandler
	Admin    *handler.AdminHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	h Handlers,
	tokens *auth.TokenService,
	profileRepo repository.ProfileRepository,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	authenticate := middleware.Authenticate(tokens, logger)
	requireAdmin := middleware.RequireAdmin(profileRepo, logger)

	authed := func(fn http.HandlerFunc) http.Handler {
		return authenticate(fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return authenticate(requireAdmin(fn))
	}

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public catalogue routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Product.GetByID(w, r)
			return
		}
		h.Product.List(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Public storefront banners
	mux.HandleFunc("/api/banners", methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Banner.ListActive,
	}))

	// Shipping quote proxy, carrier OAuth bootstrap, postal autofill
	mux.HandleFunc("/api/shipping/quote", methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Shipping.Quote,
	}))
	mux.HandleFunc("/api/shipping/auth/callback", methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Shipping.OAuthCallback,
	}))
	mux.HandleFunc("/api/address/lookup/", methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Shipping.Lookup,
	}))

	// Session routes
	mux.HandleFunc("/api/auth/register", methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Auth.Register,
	}))
	mux.HandleFunc("/api/auth/login", methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Auth.Login,
	}))
	mux.HandleFunc("/api/auth/refresh", methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Auth.Refresh,
	}))

	// Cart routes (session required)
	mux.Handle("/api/cart", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Cart.Get,
	})))
	mux.Handle("/api/cart/items", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Cart.AddItem,
	})))
	mux.Handle("/api/cart/items/", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodPut:    h.Cart.UpdateItem,
		http.MethodDelete: h.Cart.RemoveItem,
	})))
	mux.Handle("/api/cart/coupon", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Cart.ValidateCoupon,
	})))

	// Checkout and order routes (session required)
	mux.Handle("/api/checkout", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Order.Checkout,
	})))
	mux.Handle("/api/orders", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Order.List,
	})))
	mux.Handle("/api/orders/", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Order.GetByID,
	})))

	// Profile and address book routes (session required)
	mux.Handle("/api/profile", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Profile.Get,
		http.MethodPut: h.Profile.Update,
	})))
	mux.Handle("/api/profile/addresses", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet:  h.Profile.ListAddresses,
		http.MethodPost: h.Profile.AddAddress,
	})))
	mux.Handle("/api/profile/addresses/", authed(methodRoute(map[string]http.HandlerFunc{
		http.MethodPut:    h.Profile.UpdateAddress,
		http.MethodDelete: h.Profile.DeleteAddress,
	})))

	// Back-office routes (admin role required)
	mux.Handle("/api/admin/products", admin(methodRoute(map[string]http.HandlerFunc{
		http.MethodPost: h.Product.Create,
	})))
	mux.Handle("/api/admin/products/", admin(methodRoute(map[string]http.HandlerFunc{
		http.MethodPut:    h.Product.Update,
		http.MethodDelete: h.Product.Delete,
	})))
	mux.Handle("/api/admin/orders/", admin(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/status") {
			h.Order.UpdateStatus(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	mux.Handle("/api/admin/clients", admin(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Admin.ListClients,
	})))
	mux.Handle("/api/admin/activities", admin(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet: h.Admin.ListActivities,
	})))
	mux.Handle("/api/admin/banners", admin(methodRoute(map[string]http.HandlerFunc{
		http.MethodGet:  h.Banner.List,
		http.MethodPost: h.Banner.Create,
	})))
	mux.Handle("/api/admin/banners/", admin(methodRoute(map[string]http.HandlerFunc{
		http.MethodPut:    h.Banner.Update,
		http.MethodDelete: h.Banner.Delete,
	})))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}

// methodRoute dispatches by HTTP method, rejecting everything else.
func methodRoute(routes map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if fn, ok := routes[r.Method]; ok {
			fn(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
