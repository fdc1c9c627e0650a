package router

import (
	"net/http"

	"zigueroutine/internal/handler"
	"zigueroutine/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	tireHandler *handler.TireHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	allowedOrigins []string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/tires", tireHandler.List)
		r.Get("/tires/{tireId}", tireHandler.GetByID)

		r.Post("/carts", cartHandler.Create)
		r.Get("/carts/{cartId}", cartHandler.Get)
		r.Post("/carts/{cartId}/items", cartHandler.AddItem)
		r.Put("/carts/{cartId}/items/{tireId}", cartHandler.SetQty)
		r.Delete("/carts/{cartId}/items/{tireId}", cartHandler.RemoveItem)
		r.Post("/carts/{cartId}/checkout", cartHandler.Checkout)

		r.Post("/orders", orderHandler.Create)
		r.Get("/orders/{code}", orderHandler.GetByCode)
	})

	return r
}
