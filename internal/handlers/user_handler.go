package handlers

import (
    "encoding/json"
    "net/http"

    "github.com/go-chi/chi/v5"
    "vitrine/internal/middleware"
    "vitrine/internal/models"
    "vitrine/internal/repository"
)

type UserHandler struct {
    users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
    return &UserHandler{users: users}
}

// @Tags Account
// @Summary Get own profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
    u, err := h.users.GetByID(r.Context(), middleware.UserID(r.Context()))
    if err != nil {
        writeJSONError(w, http.StatusNotFound, "user_not_found", "User not found")
        return
    }
    writeJSON(w, http.StatusOK, u)
}

// @Tags Account
// @Summary Update own profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.UpdateUserRequest true "Update profile request"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/users/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
    id := middleware.UserID(r.Context())

    var req models.UpdateUserRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
        return
    }

    if err := h.users.UpdateProfile(r.Context(), id, &req); err != nil {
        if err.Error() == "user not found" {
            writeJSONError(w, http.StatusNotFound, "user_not_found", "User not found")
            return
        }
        writeJSONError(w, http.StatusInternalServerError, "update_user_failed", "Failed to update profile")
        return
    }

    updated, err := h.users.GetByID(r.Context(), id)
    if err != nil {
        writeJSONError(w, http.StatusInternalServerError, "get_user_failed", "Failed to fetch updated profile")
        return
    }
    writeJSON(w, http.StatusOK, updated)
}

// @Tags Account
// @Summary List users (admin)
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
    users, err := h.users.ListAll(r.Context())
    if err != nil {
        writeJSONError(w, http.StatusInternalServerError, "list_users_failed", "Failed to list users")
        return
    }
    if users == nil {
        users = []models.User{}
    }
    writeJSON(w, http.StatusOK, users)
}

// @Tags Account
// @Summary Set a user's verified badge (admin)
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body models.SetVerifiedRequest true "Verified flag"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id}/verified [put]
func (h *UserHandler) SetVerified(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if id == "" {
        writeJSONError(w, http.StatusBadRequest, "invalid_request", "User ID is required")
        return
    }

    var req models.SetVerifiedRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        writeJSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
        return
    }

    if err := h.users.SetVerified(r.Context(), id, req.Verified); err != nil {
        if err.Error() == "user not found" {
            writeJSONError(w, http.StatusNotFound, "user_not_found", "User not found")
            return
        }
        writeJSONError(w, http.StatusInternalServerError, "set_verified_failed", "Failed to update user")
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{"id": id, "verified": req.Verified})
}
