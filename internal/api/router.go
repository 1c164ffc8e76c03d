package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/phrazzld/orders-api/internal/api/middleware"
	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/store"
)

// NewRouter creates and configures the application router with all
// routes and middleware.
func NewRouter(users store.UserStore, orders store.OrderStore, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware. StripSlashes keeps /users/ and /users
	// routing to the same handlers.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(apimiddleware.TraceMiddleware)

	userHandler := NewUserHandler(users, log)
	orderHandler := NewOrderHandler(orders, users, log)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{userID}", userHandler.Get)
		r.Put("/{userID}", userHandler.Replace)
		r.Patch("/{userID}", userHandler.Patch)
		r.Delete("/{userID}", userHandler.Delete)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.List)
		r.Post("/", orderHandler.Create)
		// The static /user segment must be registered alongside the
		// {orderID} routes; chi gives it precedence over the parameter.
		r.Get("/user/{userID}", orderHandler.ListByUser)
		r.Get("/{orderID}", orderHandler.Get)
		r.Put("/{orderID}", orderHandler.Replace)
		r.Patch("/{orderID}", orderHandler.Patch)
		r.Delete("/{orderID}", orderHandler.Delete)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "Users & Orders demo API is running",
			"health":  "/health",
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
