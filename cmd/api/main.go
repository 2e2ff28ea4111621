// cmd/api/main.go
package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    _ "github.com/lib/pq"
    "vitrine/internal/config"
    "vitrine/internal/db"
    "vitrine/internal/db/migrations"
    "vitrine/internal/routes"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    cfg := config.Load()

    // Create database if it doesn't exist
    if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
        log.Fatalf("Failed to ensure database exists: %v", err)
    }

    database, err := db.New(cfg.DatabaseURL)
    if err != nil {
        log.Fatalf("Failed to connect to database: %v", err)
    }
    defer database.Close()

    if err := migrations.RunMigrations(database.DB); err != nil {
        log.Fatalf("Failed to run migrations: %v", err)
    }

    s3Config, err := config.NewS3Config()
    if err != nil {
        log.Printf("S3 not configured, media upload disabled: %v", err)
    }

    router := routes.SetupRoutes(database.DB, cfg, s3Config)

    server := &http.Server{
        Addr:    ":" + cfg.Port,
        Handler: router,
    }

    // Graceful shutdown
    go func() {
        log.Printf("Server starting on port %s", cfg.Port)
        if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("Failed to start server: %v", err)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    log.Println("Shutting down server...")

    // Give server 5 seconds to finish current requests
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := server.Shutdown(ctx); err != nil {
        log.Fatalf("Server forced to shutdown: %v", err)
    }

    log.Println("Server exiting")
}
