package handlers

import (
    "database/sql"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"
    "vitrine/internal/interfaces"
    "vitrine/internal/middleware"
    "vitrine/internal/models"
)

type AdHandler struct {
    repo interfaces.AdRepository
}

func NewAdHandler(repo interfaces.AdRepository) *AdHandler {
    return &AdHandler{repo: repo}
}

// ListAds handles GET /api/v1/ads
// Public listing; only approved ads unless the caller filters their own.
// @Tags Ads
// @Summary List ads
// @Produce json
// @Param category query string false "Category"
// @Param location query string false "Location substring"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Ad
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ads [get]
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
    q := r.URL.Query()

    filter := interfaces.AdFilter{
        Status:   string(models.AdStatusApproved),
        Category: q.Get("category"),
        Location: q.Get("location"),
        Limit:    100,
    }
    if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
        filter.MinPrice = v
    }
    if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
        filter.MaxPrice = v
    }
    if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 100 {
        filter.Limit = v
    }
    if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
        filter.Offset = v
    }

    ads, err := h.repo.List(r.Context(), filter)
    if err != nil {
        writeJSONError(w, http.StatusInternalServerError, "list_ads_failed", "Failed to list ads")
        return
    }

    if ads == nil {
        ads = []*models.Ad{}
    }
    writeJSON(w, http.StatusOK, ads)
}

// ListMyAds handles GET /api/v1/ads/mine — every status, owner only
// @Tags Ads
// @Summary List the caller's ads
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Ad
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ads/mine [get]
func (h *AdHandler) ListMyAds(w http.ResponseWriter, r *http.Request) {
    ads, err := h.repo.List(r.Context(), interfaces.AdFilter{
        UserID: middleware.UserID(r.Context()),
        Limit:  100,
    })
    if err != nil {
        writeJSONError(w, http.StatusInternalServerError, "list_ads_failed", "Failed to list ads")
        return
    }
    if ads == nil {
        ads = []*models.Ad{}
    }
    writeJSON(w, http.StatusOK, ads)
}

// GetAd handles GET /api/v1/ads/{id}
// @Tags Ads
// @Summary Get one ad
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} models.Ad
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/ads/{id} [get]
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if id == "" {
        writeJSONError(w, http.StatusBadRequest, "invalid_request", "Ad ID is required")
        return
    }

    ad, err := h.repo.GetByID(r.Context(), id)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            writeJSONError(w, http.StatusNotFound, "ad_not_found", "Ad not found")
            return
        }
        writeJSONError(w, http.StatusInternalServerError, "get_ad_failed", "Failed to fetch ad")
        return
    }

    writeJSON(w, http.StatusOK, ad)
}

// DeleteAd handles DELETE /api/v1/ads/{id} — owner only
// @Tags Ads
// @Summary Delete an ad
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/ads/{id} [delete]
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if id == "" {
        writeJSONError(w, http.StatusBadRequest, "invalid_request", "Ad ID is required")
        return
    }

    ad, err := h.repo.GetByID(r.Context(), id)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            writeJSONError(w, http.StatusNotFound, "ad_not_found", "Ad not found")
            return
        }
        writeJSONError(w, http.StatusInternalServerError, "delete_ad_failed", "Failed to delete ad")
        return
    }
    if ad.UserID != middleware.UserID(r.Context()) {
        writeJSONError(w, http.StatusForbidden, "not_owner", "Only the ad owner may delete it")
        return
    }

    if err := h.repo.Delete(r.Context(), id); err != nil {
        writeJSONError(w, http.StatusInternalServerError, "delete_ad_failed", "Failed to delete ad")
        return
    }

    writeJSON(w, http.StatusOK, map[string]string{
        "message": "ad deleted successfully",
        "id":      id,
    })
}

// PauseAd handles POST /api/v1/ads/{id}/pause — owner hides an approved ad
// @Tags Ads
// @Summary Pause an ad
// @Security BearerAuth
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/ads/{id}/pause [post]
func (h *AdHandler) PauseAd(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if id == "" {
        writeJSONError(w, http.StatusBadRequest, "invalid_request", "Ad ID is required")
        return
    }

    ad, err := h.repo.GetByID(r.Context(), id)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            writeJSONError(w, http.StatusNotFound, "ad_not_found", "Ad not found")
            return
        }
        writeJSONError(w, http.StatusInternalServerError, "pause_ad_failed", "Failed to pause ad")
        return
    }
    if ad.UserID != middleware.UserID(r.Context()) {
        writeJSONError(w, http.StatusForbidden, "not_owner", "Only the ad owner may pause it")
        return
    }

    if err := h.repo.UpdateStatus(r.Context(), id, models.AdStatusPaused, ""); err != nil {
        writeJSONError(w, http.StatusInternalServerError, "pause_ad_failed", "Failed to pause ad")
        return
    }

    writeJSONMessage(w, http.StatusOK, "ad paused")
}
