package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/stayview/reviews-api/internal/auth"
	"github.com/stayview/reviews-api/internal/config"
	"github.com/stayview/reviews-api/internal/hotel"
	"github.com/stayview/reviews-api/internal/httputil"
	"github.com/stayview/reviews-api/internal/logging"
	"github.com/stayview/reviews-api/internal/review"
	"github.com/stayview/reviews-api/internal/user"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Auth   *auth.Handler
	User   *user.Handler
	Review *review.Handler
	Hotel  *hotel.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)               // Security headers on all responses
	r.Use(middleware.Recoverer)          // Recover from panics
	r.Use(middleware.RealIP)             // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))        // Compress responses

	// Public routes
	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	// Production builds will not have this route at all
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	} else {
		log.Println("Swagger UI disabled (production mode)")
	}

	// Auth routes (public)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	// User routes
	r.Route("/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/me", h.Auth.Me)
		})
		r.Get("/{id}", h.User.GetByID)
		r.Get("/{id}/username", h.User.GetUsername)
	})

	// Review routes
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.Review.List)
		r.Get("/hotel/{hotelID}", h.Review.ListByHotel)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", h.Review.Create)
		})
	})

	// Hotel catalog routes
	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.Hotel.List)
		r.Get("/municipalities", h.Hotel.Municipalities)
		r.Get("/territories", h.Hotel.Territories)
		r.Get("/municipality/code/{code}", h.Hotel.ListByMunicipalityCode)
		r.Get("/municipality/{name}", h.Hotel.ListByMunicipality)
		r.Get("/territory/code/{code}", h.Hotel.ListByTerritoryCode)
		r.Get("/territory/{name}", h.Hotel.ListByTerritory)
		r.Get("/{id}", h.Hotel.Get)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Post("/", h.Hotel.Create)
			r.Put("/{id}", h.Hotel.Update)
		})
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
