package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/employee-records/internal/employee"
	"github.com/frahmantamala/employee-records/internal/session"
	"github.com/frahmantamala/employee-records/internal/transport/middleware"
	"github.com/frahmantamala/employee-records/internal/transport/swagger"
)

// RegisterAllRoutes wires the public login surface and the guarded
// record-management routes. Every route except login requires an
// authenticated session.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, sessionHandler *session.Handler, employeeHandler *employee.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", sessionHandler.Login)
			sr.Post("/logout", sessionHandler.Logout)
		})

		// Everything below is the record-management surface
		r.Group(func(pr chi.Router) {
			pr.Use(sessionHandler.AuthMiddleware)

			pr.Get("/users/me", sessionHandler.Me)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.ListEmployees)
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/stats", employeeHandler.GetStats)
				er.Get("/report", employeeHandler.Report)
				er.Get("/{id}", employeeHandler.GetEmployee)
				er.Put("/{id}", employeeHandler.UpdateEmployee)
				er.Delete("/{id}", employeeHandler.DeleteEmployee)
				er.Patch("/{id}/status", employeeHandler.ToggleEmployeeStatus)
			})
		})
	})
}
