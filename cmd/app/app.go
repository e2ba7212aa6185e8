package app

import (
	"log"

	"quantapress/internal/config"
	"quantapress/internal/database"
	"quantapress/internal/repository"
	"quantapress/internal/service"
	"quantapress/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
