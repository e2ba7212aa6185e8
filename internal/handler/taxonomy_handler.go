package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"quantapress/internal/models"
	"quantapress/internal/slug"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory is the "quick add" from the post settings panel: categories
// are created explicitly by the user, unlike tags which appear on demand.
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	category := &models.Category{
		ProjectID: project,
		Name:      req.Name,
		Slug:      slug.Make(req.Name),
	}

	if err := h.CategoryRepo.Create(r.Context(), category); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, category, http.StatusCreated)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	categories, err := h.CategoryRepo.ListByProject(r.Context(), project)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, categories, http.StatusOK)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.CategoryRepo.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Category deleted"}, http.StatusOK)
}

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	project := projectID(r)
	if project == "" {
		WriteError(w, "X-Project-ID header is required", http.StatusBadRequest)
		return
	}

	tags, err := h.TagRepo.ListByProject(r.Context(), project)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, tags, http.StatusOK)
}
