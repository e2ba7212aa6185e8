package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"quantapress/internal/service"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("File too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusRequestEntityTooLarge)
		} else {
			WriteError(w, "Failed to parse upload", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		WriteError(w, "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP, SVG, PDF", http.StatusBadRequest)
		return
	}

	asset, err := h.MediaService.Upload(r.Context(), identity(r), service.UploadRequest{
		ProjectID: project,
		FileName:  header.Filename,
		MimeType:  contentType,
		Size:      header.Size,
		File:      file,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, asset, http.StatusCreated)
}

func (h *Handlers) ListMedia(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	assets, err := h.MediaService.List(r.Context(), project)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, assets, http.StatusOK)
}

func (h *Handlers) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AltText     string `json:"altText"`
		Title       string `json:"title"`
		Caption     string `json:"caption"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	asset, err := h.MediaService.UpdateMeta(r.Context(), mux.Vars(r)["id"], service.MediaMetaUpdate{
		AltText:     req.AltText,
		Title:       req.Title,
		Caption:     req.Caption,
		Description: req.Description,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, asset, http.StatusOK)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if err := h.MediaService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Media asset deleted"}, http.StatusOK)
}
