package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"vitrine/internal/interfaces"
	"vitrine/internal/models"
	"vitrine/internal/repository"
	"vitrine/internal/services"
)

// ModerationHandler is the admin dashboard backend: pending queue plus
// approve/reject. Decision mails are best effort, a dead SMTP server never
// blocks moderation.
type ModerationHandler struct {
	ads       interfaces.AdRepository
	users     repository.UserRepository
	mailer    services.Mailer
	validator *validator.Validate
}

func NewModerationHandler(ads interfaces.AdRepository, users repository.UserRepository, mailer services.Mailer) *ModerationHandler {
	return &ModerationHandler{
		ads:       ads,
		users:     users,
		mailer:    mailer,
		validator: validator.New(),
	}
}

// ListPending handles GET /api/v1/admin/ads
// @Tags Moderation
// @Summary List ads waiting for review
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Ad
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/ads [get]
func (h *ModerationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	ads, err := h.ads.List(r.Context(), interfaces.AdFilter{
		Status: string(models.AdStatusPendingApproval),
		Limit:  100,
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "list_pending_failed", "Failed to list pending ads")
		return
	}
	if ads == nil {
		ads = []*models.Ad{}
	}
	writeJSON(w, http.StatusOK, ads)
}

// Approve handles POST /api/v1/admin/ads/{id}/approve
// @Tags Moderation
// @Summary Approve a pending ad
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/ads/{id}/approve [post]
func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.AdStatusApproved, "")
}

// Reject handles POST /api/v1/admin/ads/{id}/reject
// @Tags Moderation
// @Summary Reject a pending ad with a reason
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ad ID"
// @Param body body models.RejectAdRequest true "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/ads/{id}/reject [post]
func (h *ModerationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req models.RejectAdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	h.decide(w, r, models.AdStatusRejected, req.Reason)
}

func (h *ModerationHandler) decide(w http.ResponseWriter, r *http.Request, status models.AdStatus, reason string) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Ad ID is required")
		return
	}

	ad, err := h.ads.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "ad_not_found", "Ad not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "moderation_failed", "Failed to load ad")
		return
	}

	if err := h.ads.UpdateStatus(r.Context(), id, status, reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusNotFound, "ad_not_found", "Ad not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "moderation_failed", "Failed to update ad status")
		return
	}

	h.notifyOwner(r, ad, status, reason)

	writeJSON(w, http.StatusOK, map[string]any{
		"id":     id,
		"status": status,
	})
}

func (h *ModerationHandler) notifyOwner(r *http.Request, ad *models.Ad, status models.AdStatus, reason string) {
	if h.mailer == nil {
		return
	}
	owner, err := h.users.GetByID(r.Context(), ad.UserID)
	if err != nil || owner.Email == "" {
		return
	}

	var subject, body string
	if status == models.AdStatusApproved {
		subject = "Seu anúncio foi aprovado"
		body = "O anúncio \"" + ad.Title + "\" foi aprovado e já está visível na plataforma."
	} else {
		subject = "Seu anúncio foi recusado"
		body = "O anúncio \"" + ad.Title + "\" foi recusado.\n\nMotivo: " + reason
	}

	if err := h.mailer.Send(owner.Email, subject, body); err != nil {
		log.Printf("Failed to send moderation mail to %s: %v", owner.Email, err)
	}
}
