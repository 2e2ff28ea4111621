// internal/routes/routes.go
package routes

import (
    "database/sql"
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/go-chi/cors"
    "vitrine/internal/config"
    "vitrine/internal/wizard"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
    r := chi.NewRouter()

    // Middleware
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(middleware.Logger)
    r.Use(middleware.Recoverer)
    r.Use(cors.Handler(cors.Options{
        AllowedOrigins:   []string{"*"},
        AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
        AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
        AllowCredentials: false,
        MaxAge:           300,
    }))

    r.Get("/", func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "application/json")
        _ = json.NewEncoder(w).Encode(map[string]string{"message": "vitrine api"})
    })

    // Health check with DB status
    r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
        type dbStatus struct {
            Status string `json:"status"`
            Error  string `json:"error,omitempty"`
        }
        resp := struct {
            Status string   `json:"status"`
            DB     dbStatus `json:"db"`
        }{Status: "ok", DB: dbStatus{Status: "ok"}}

        status := http.StatusOK
        if err := db.PingContext(r.Context()); err != nil {
            resp.Status = "degraded"
            resp.DB = dbStatus{Status: "down", Error: err.Error()}
            status = http.StatusServiceUnavailable
        }

        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(status)
        _ = json.NewEncoder(w).Encode(resp)
    })

    RegisterSwaggerRoutes(r)

    // Wizard sessions live for the whole process; drafts are in-memory only
    sessions := wizard.NewSessions()

    // API v1 routes
    r.Route("/api/v1", func(r chi.Router) {
        RegisterAuthRoutes(r, db, cfg)
        RegisterAdRoutes(r, db, cfg)
        RegisterWizardRoutes(r, db, cfg, sessions)
        RegisterMediaRoutes(r, cfg, s3Config)
        RegisterCEPRoutes(r, cfg)
        RegisterUserRoutes(r, db, cfg)
        RegisterAdminRoutes(r, db, cfg)
    })

    return r
}
