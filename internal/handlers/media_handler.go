package handlers

import (
	"log"
	"net/http"

	"vitrine/internal/services"
)

type MediaHandler struct {
	uploader *services.MediaUploader
}

func NewMediaHandler(uploader *services.MediaUploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload handles POST /api/v1/media/upload
// One file per request; "kind" selects the constraint set. The response URL
// is what the client patches into the draft's image_url/video_url — the
// wizard itself never sees file bytes.
// @Tags Media
// @Summary Upload an ad photo or video
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param kind formData string true "image or video"
// @Param file formData file true "Media file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/media/upload [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse form")
		return
	}

	var constraints services.UploadConstraints
	switch r.FormValue("kind") {
	case "image":
		constraints = services.ImageConstraints
	case "video":
		constraints = services.VideoConstraints
	default:
		writeJSONError(w, http.StatusBadRequest, "validation_error", "kind must be image or video")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := constraints.Check(contentType, header.Size); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	url, err := h.uploader.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		log.Printf("Failed to upload %s: %v", header.Filename, err)
		writeJSONError(w, http.StatusInternalServerError, "upload_failed", "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"url":  url,
		"name": header.Filename,
		"size": header.Size,
	})
}
