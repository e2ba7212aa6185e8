package handlers

import (
	"errors"
	"net/http"

	"quantapress/internal/models"
	"quantapress/internal/repository"
)

type PublicMeta struct {
	Count   int    `json:"count"`
	Project string `json:"project"`
}

type PublicListResponse struct {
	Meta PublicMeta          `json:"meta"`
	Data []models.PublicPost `json:"data"`
}

type PublicPostResponse struct {
	Data models.PublicPost `json:"data"`
}

// PublicPosts is the public read API: published posts of the project that
// owns the presented API key. No writes, no state across requests.
func (h *Handlers) PublicPosts(w http.ResponseWriter, r *http.Request) {
	apiKey := r.URL.Query().Get("key")
	if apiKey == "" {
		WriteError(w, "Missing API key", http.StatusUnauthorized)
		return
	}

	project, err := h.ProjectRepo.GetByAPIKey(r.Context(), apiKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Invalid API key", http.StatusForbidden)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filter := repository.PublishedFilter{
		Slug: r.URL.Query().Get("slug"),
		Tag:  r.URL.Query().Get("tag"),
	}

	posts, err := h.PostRepo.ListPublished(r.Context(), project.ProjectID, filter)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.PublicPost{}
	}

	if filter.Slug != "" {
		if len(posts) == 0 {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		WriteJSON(w, PublicPostResponse{Data: posts[0]}, http.StatusOK)
		return
	}

	WriteJSON(w, PublicListResponse{
		Meta: PublicMeta{Count: len(posts), Project: project.Name},
		Data: posts,
	}, http.StatusOK)
}
