package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"vitrine/internal/services"
)

type CEPHandler struct {
	client *services.CEPClient
}

func NewCEPHandler(client *services.CEPClient) *CEPHandler {
	return &CEPHandler{client: client}
}

// Lookup handles GET /api/v1/cep/{code}
// Used by the location step to prefill neighborhood and city.
// @Tags CEP
// @Summary Resolve a postal code
// @Produce json
// @Param code path string true "CEP, masked or raw digits"
// @Success 200 {object} services.CEPAddress
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/cep/{code} [get]
func (h *CEPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	addr, err := h.client.Lookup(r.Context(), code)
	if err != nil {
		if errors.Is(err, services.ErrCEPNotFound) {
			writeJSONError(w, http.StatusNotFound, "cep_not_found", "Postal code not found")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "cep_lookup_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, addr)
}
