package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

// Pinger reports whether the connection pool can reach the database.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler handles HTTP requests for the application.
type Handler struct {
	resources []ResourceService
	details   repository.DetailsRepository
	auth      AuthService
	tokens    TokenVerifier
	db        Pinger
}

func NewHandler(
	resources []ResourceService,
	details repository.DetailsRepository,
	auth AuthService,
	tokens TokenVerifier,
	db Pinger,
) *Handler {
	return &Handler{
		resources: resources,
		details:   details,
		auth:      auth,
		tokens:    tokens,
		db:        db,
	}
}

// Routes builds the full router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(EnableCORS)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.handleWelcome)
	r.Get("/healthz", h.handleHealth)

	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.With(RequireToken(h.tokens), RequireAdmin).Get("/admin-dashboard", h.handleAdminDashboard)

	r.Route("/api", func(r chi.Router) {
		for _, svc := range h.resources {
			res := svc.Resource()
			r.Route("/"+res.Path, func(r chi.Router) {
				h.mountExtras(r, res)
				mountResource(r, svc)
			})
		}
	})

	return r
}

// mountExtras registers the join and relationship reads that live under a
// resource's base path.
func (h *Handler) mountExtras(r chi.Router, res entity.Resource) {
	switch res.Path {
	case entity.Customers.Path:
		r.Get("/{id}/full-details", h.handleCustomerFullDetails)
	case entity.Products.Path:
		r.Get("/full-details", h.handleProductsFullDetails)
	case entity.Inventory.Path:
		r.Get("/full-details", h.handleInventoryFullDetails)
		r.Get("/products/{id}", h.listByParent("inventory by product", h.details.InventoryByProduct))
		r.Get("/warehouses/{id}", h.listByParent("inventory by warehouse", h.details.InventoryByWarehouse))
	case entity.Orders.Path:
		r.Get("/{id}/items", h.listByParent("order items", h.details.OrderItemsByOrder))
	}
}

func (h *Handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, "Welcome to the Commercial DB API!"); err != nil {
		slog.Error("Failed to write welcome", "err", err)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		slog.Error("Health check failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
