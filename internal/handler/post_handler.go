package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quantapress/internal/middleware"
	"quantapress/internal/models"
	"quantapress/internal/service"
)

type SavePostRequest struct {
	IdempotencyKey  *string         `json:"idempotencyKey"`
	Title           string          `json:"title" validate:"required"`
	Slug            string          `json:"slug"`
	Content         json.RawMessage `json:"content"`
	Excerpt         string          `json:"excerpt"`
	SEOTitle        string          `json:"seoTitle"`
	SEODescription  string          `json:"seoDescription"`
	FeaturedImageID *string         `json:"featuredImageId"`
	Tags            []string        `json:"tags"`
	CategoryIDs     []string        `json:"categoryIds"`
	Status          string          `json:"status" validate:"required,oneof=draft published"`
}

// projectID resolves the tenant for the request. Project resolution is an
// explicit required input; there is no "first project row" fallback.
func projectID(r *http.Request) string {
	return r.Header.Get("X-Project-ID")
}

func identity(r *http.Request) *models.Identity {
	id, _ := middleware.IdentityFromContext(r.Context())
	return id
}

func (h *Handlers) decodeSaveRequest(w http.ResponseWriter, r *http.Request) (*SavePostRequest, bool) {
	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.Save(r.Context(), identity(r), service.SaveRequest{
		ProjectID:       projectID(r),
		IdempotencyKey:  req.IdempotencyKey,
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
		FeaturedImageID: req.FeaturedImageID,
		Tags:            req.Tags,
		CategoryIDs:     req.CategoryIDs,
		TargetStatus:    req.Status,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.Save(r.Context(), identity(r), service.SaveRequest{
		PostID:          mux.Vars(r)["id"],
		ProjectID:       projectID(r),
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
		FeaturedImageID: req.FeaturedImageID,
		Tags:            req.Tags,
		CategoryIDs:     req.CategoryIDs,
		TargetStatus:    req.Status,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	posts, err := h.PostService.ListPosts(r.Context(), project, r.URL.Query().Get("status"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.PostService.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

func (h *Handlers) ProjectStats(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	stats, err := h.StatsService.ProjectStats(r.Context(), project)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
