package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Bar-innutshell/Management-Karyawan/internal/auth"
	"github.com/Bar-innutshell/Management-Karyawan/internal/shift"
	"github.com/Bar-innutshell/Management-Karyawan/internal/transport/middleware"
	"github.com/Bar-innutshell/Management-Karyawan/internal/transport/swagger"
	"github.com/Bar-innutshell/Management-Karyawan/internal/user"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the API. Shift routes are read-only on purpose:
// shift templates are seeded data, and create/update/delete requests must
// fall through to 405 at the router.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, shiftHandler *shift.Handler, userHandler *user.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
		})

		// Authenticated routes
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			// Shift catalog, readable by any authenticated user
			pr.Route("/shifts", func(sr chi.Router) {
				sr.Get("/", shiftHandler.GetShifts)
				sr.Get("/{id}", shiftHandler.GetShift)
			})

			// User management, admin only
			pr.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireAdmin)

				ar.Route("/users", func(ur chi.Router) {
					ur.Get("/", userHandler.GetUsers)
					ur.Post("/", userHandler.CreateUser)
					ur.Get("/{id}", userHandler.GetUser)
					ur.Put("/{id}", userHandler.UpdateUser)
					ur.Delete("/{id}", userHandler.DeleteUser)
				})
			})
		})
	})
}
