package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"quantapress/internal/models"
	"quantapress/internal/repository"
	"quantapress/internal/storage"
)

type UploadRequest struct {
	ProjectID string
	FileName  string
	MimeType  string
	Size      int64
	File      io.Reader
}

type MediaMetaUpdate struct {
	AltText     string
	Title       string
	Caption     string
	Description string
}

type MediaService interface {
	Upload(ctx context.Context, identity *models.Identity, req UploadRequest) (*models.MediaAsset, error)
	List(ctx context.Context, projectID string) ([]models.MediaAsset, error)
	UpdateMeta(ctx context.Context, mediaID string, meta MediaMetaUpdate) (*models.MediaAsset, error)
	Delete(ctx context.Context, mediaID string) error
}

type mediaService struct {
	mediaRepo repository.MediaRepository
	author    AuthorService
	store     storage.Storage
}

func NewMediaService(mediaRepo repository.MediaRepository, author AuthorService, store storage.Storage) MediaService {
	return &mediaService{mediaRepo: mediaRepo, author: author, store: store}
}

// Upload stores the file in the blob store and records the asset row. The
// uploader is provisioned as an author first because media_assets carries an
// uploader_id foreign key. A failed row insert removes the stored object
// again so the bucket holds no orphans.
func (m *mediaService) Upload(ctx context.Context, identity *models.Identity, req UploadRequest) (*models.MediaAsset, error) {
	if identity == nil || identity.ID == "" {
		return nil, ErrIdentityRequired
	}
	if req.ProjectID == "" {
		return nil, ErrProjectRequired
	}

	if _, err := m.author.EnsureAuthor(ctx, identity); err != nil {
		return nil, err
	}

	objectName, fileURL, err := m.store.UploadFile(ctx, req.ProjectID, req.FileName, req.File, req.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	asset := &models.MediaAsset{
		ProjectID:  req.ProjectID,
		UploaderID: identity.ID,
		FileURL:    fileURL,
		FileName:   req.FileName,
		MimeType:   req.MimeType,
		SizeBytes:  req.Size,
	}

	if err := m.mediaRepo.Create(ctx, asset); err != nil {
		if delErr := m.store.DeleteFile(ctx, objectName); delErr != nil {
			log.Printf("Warning: failed to remove orphaned object %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("failed to record media asset: %w", err)
	}

	return asset, nil
}

func (m *mediaService) List(ctx context.Context, projectID string) ([]models.MediaAsset, error) {
	return m.mediaRepo.ListByProject(ctx, projectID)
}

func (m *mediaService) UpdateMeta(ctx context.Context, mediaID string, meta MediaMetaUpdate) (*models.MediaAsset, error) {
	asset, err := m.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	asset.AltText = meta.AltText
	asset.Title = meta.Title
	asset.Caption = meta.Caption
	asset.Description = meta.Description

	if err := m.mediaRepo.UpdateMeta(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

func (m *mediaService) Delete(ctx context.Context, mediaID string) error {
	asset, err := m.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}

	if err := m.mediaRepo.Delete(ctx, mediaID); err != nil {
		return err
	}

	objectName, err := m.store.ObjectNameFromURL(asset.FileURL)
	if err != nil {
		log.Printf("Warning: cannot resolve object for %s: %v", asset.FileURL, err)
		return nil
	}
	if err := m.store.DeleteFile(ctx, objectName); err != nil {
		log.Printf("Warning: failed to delete object %s: %v", objectName, err)
	}

	return nil
}
