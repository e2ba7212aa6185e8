package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"quantapress/internal/repository"
	"quantapress/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the service and repository sentinels onto HTTP
// status codes; anything unrecognized becomes a 500 with the wrapped store
// message.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrIdentityRequired):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrProjectRequired),
		errors.Is(err, service.ErrInvalidStatus):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrSaveInFlight):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrSlugTaken),
		errors.Is(err, repository.ErrIdempotencyKeyUsed):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrReferenceMissing):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		WriteError(w, "The save timed out, please retry", http.StatusGatewayTimeout)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
