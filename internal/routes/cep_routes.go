package routes

import (
	"github.com/go-chi/chi/v5"
	"vitrine/internal/config"
	"vitrine/internal/handlers"
	"vitrine/internal/services"
)

func RegisterCEPRoutes(router chi.Router, cfg *config.Config) {
	client := services.NewCEPClient(cfg.CEPLookupBaseURL)
	cepHandler := handlers.NewCEPHandler(client)

	router.Get("/cep/{code}", cepHandler.Lookup)
}
