package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"quantapress/cmd/app"
	"quantapress/internal/config"
	handlers "quantapress/internal/handler"
	"quantapress/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// Public read API, gated by the per-project API key.
	router.HandleFunc("/api/v1/posts", handler.PublicPosts).Methods(http.MethodGet)

	// Admin API, gated by the identity provider's bearer token.
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.Identity(cfg)))

	admin.HandleFunc("/posts", handler.ListPosts).Methods(http.MethodGet)
	admin.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	admin.HandleFunc("/categories", handler.ListCategories).Methods(http.MethodGet)
	admin.HandleFunc("/categories", handler.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", handler.DeleteCategory).Methods(http.MethodDelete)
	admin.HandleFunc("/tags", handler.ListTags).Methods(http.MethodGet)

	admin.HandleFunc("/media", handler.UploadMedia).Methods(http.MethodPost)
	admin.HandleFunc("/media", handler.ListMedia).Methods(http.MethodGet)
	admin.HandleFunc("/media/{id}", handler.UpdateMedia).Methods(http.MethodPatch)
	admin.HandleFunc("/media/{id}", handler.DeleteMedia).Methods(http.MethodDelete)

	admin.HandleFunc("/stats", handler.ProjectStats).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.CORS,
		middleware.Logging,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
