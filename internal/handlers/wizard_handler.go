package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"vitrine/internal/interfaces"
	"vitrine/internal/middleware"
	"vitrine/internal/models"
	"vitrine/internal/wizard"
)

// WizardHandler exposes the ad-creation wizard over HTTP. Each
// authenticated user has at most one open session; the draft lives only in
// the session registry until it is submitted or discarded.
type WizardHandler struct {
	sessions  *wizard.Sessions
	ads       interfaces.AdRepository
	validator *validator.Validate
}

func NewWizardHandler(sessions *wizard.Sessions, ads interfaces.AdRepository) *WizardHandler {
	return &WizardHandler{
		sessions:  sessions,
		ads:       ads,
		validator: validator.New(),
	}
}

// Start handles POST /api/v1/wizard
// @Tags Wizard
// @Summary Open a new ad draft (optionally seeded from an existing ad)
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.StartWizardRequest false "Start request"
// @Success 201 {object} models.WizardStateResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/wizard [post]
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req models.StartWizardRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
			return
		}
		if err := h.validator.Struct(req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
	}

	var wz *wizard.Wizard
	if req.AdID != "" {
		ad, err := h.ads.GetByID(r.Context(), req.AdID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeJSONError(w, http.StatusNotFound, "ad_not_found", "Ad not found")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "start_failed", "Failed to load ad")
			return
		}
		if ad.UserID != userID {
			writeJSONError(w, http.StatusForbidden, "not_owner", "Only the ad owner may edit it")
			return
		}
		wz = wizard.NewForAd(ad)
	} else {
		wz = wizard.New()
	}

	// an already-open draft is dropped, same as closing the wizard mid-way
	h.sessions.Put(userID, wz)
	writeJSON(w, http.StatusCreated, wz.State())
}

// GetState handles GET /api/v1/wizard
// @Tags Wizard
// @Summary Current draft, step, validity and completion
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.WizardStateResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/wizard [get]
func (h *WizardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	wz := h.sessions.Get(middleware.UserID(r.Context()))
	if wz == nil {
		writeJSONError(w, http.StatusNotFound, "no_session", "No open wizard session")
		return
	}
	writeJSON(w, http.StatusOK, wz.State())
}

// PatchDraft handles PATCH /api/v1/wizard
// @Tags Wizard
// @Summary Merge fields into the draft
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.AdDraftPatch true "Draft patch"
// @Success 200 {object} models.WizardStateResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/wizard [patch]
func (h *WizardHandler) PatchDraft(w http.ResponseWriter, r *http.Request) {
	wz := h.sessions.Get(middleware.UserID(r.Context()))
	if wz == nil {
		writeJSONError(w, http.StatusNotFound, "no_session", "No open wizard session")
		return
	}

	var patch models.AdDraftPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	// phone and CEP are stored masked; re-mask on every patch so partial
	// input stays formatted keystroke by keystroke
	if patch.WhatsApp != nil {
		masked := wizard.FormatWhatsApp(*patch.WhatsApp)
		patch.WhatsApp = &masked
	}
	if patch.PostalCode != nil {
		masked := wizard.FormatPostalCode(*patch.PostalCode)
		patch.PostalCode = &masked
	}

	wz.Patch(&patch)
	writeJSON(w, http.StatusOK, wz.State())
}

// Next handles POST /api/v1/wizard/next
// @Tags Wizard
// @Summary Advance to the next step when the current one is complete
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.WizardStateResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/wizard/next [post]
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	wz := h.sessions.Get(middleware.UserID(r.Context()))
	if wz == nil {
		writeJSONError(w, http.StatusNotFound, "no_session", "No open wizard session")
		return
	}
	if !wz.Next() {
		writeJSONError(w, http.StatusConflict, "step_incomplete", "Current step is missing required fields")
		return
	}
	writeJSON(w, http.StatusOK, wz.State())
}

// Back handles POST /api/v1/wizard/back
// @Tags Wizard
// @Summary Go back one step (always allowed)
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.WizardStateResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/wizard/back [post]
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	wz := h.sessions.Get(middleware.UserID(r.Context()))
	if wz == nil {
		writeJSONError(w, http.StatusNotFound, "no_session", "No open wizard session")
		return
	}
	wz.Back()
	writeJSON(w, http.StatusOK, wz.State())
}

// Submit handles POST /api/v1/wizard/submit
// @Tags Wizard
// @Summary Submit the draft for moderation
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Ad
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/v1/wizard/submit [post]
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	wz := h.sessions.Get(userID)
	if wz == nil {
		writeJSONError(w, http.StatusNotFound, "no_session", "No open wizard session")
		return
	}

	ad, err := wz.Submit(r.Context(), userID, h.ads)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrNotAuthenticated):
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		case errors.Is(err, wizard.ErrStepIncomplete):
			writeJSONError(w, http.StatusConflict, "step_incomplete", "Finish every step before submitting")
		case errors.Is(err, wizard.ErrSubmitInFlight):
			writeJSONError(w, http.StatusConflict, "submit_in_flight", "Submission already in progress")
		default:
			// draft is preserved, the user retries manually
			log.Printf("Failed to submit ad for user %s: %v", userID, err)
			writeJSONError(w, http.StatusBadGateway, "submit_failed", "Failed to submit ad, try again")
		}
		return
	}

	h.sessions.Delete(userID)
	writeJSON(w, http.StatusCreated, ad)
}

// Discard handles DELETE /api/v1/wizard
// @Tags Wizard
// @Summary Discard the open draft
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/wizard [delete]
func (h *WizardHandler) Discard(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(middleware.UserID(r.Context()))
	writeJSONMessage(w, http.StatusOK, "draft discarded")
}
