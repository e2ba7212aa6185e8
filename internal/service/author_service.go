package service

import (
	"context"
	"fmt"
	"strings"

	"quantapress/internal/models"
	"quantapress/internal/repository"
)

type AuthorService interface {
	EnsureAuthor(ctx context.Context, identity *models.Identity) (*models.Author, error)
}

type authorService struct {
	authorRepo repository.AuthorRepository
}

func NewAuthorService(authorRepo repository.AuthorRepository) AuthorService {
	return &authorService{authorRepo: authorRepo}
}

// EnsureAuthor upserts the author row for the authenticated identity. Posts
// reference authors by foreign key, so every save runs this first and aborts
// if it fails; otherwise a post row could be written with a dangling
// author_id and the failure would only surface later as an opaque
// foreign-key violation.
func (s *authorService) EnsureAuthor(ctx context.Context, identity *models.Identity) (*models.Author, error) {
	fullName := identity.FullName
	if fullName == "" {
		if at := strings.Index(identity.Email, "@"); at > 0 {
			fullName = identity.Email[:at]
		} else {
			fullName = "Admin"
		}
	}

	author := &models.Author{
		AuthorID:  identity.ID,
		Email:     identity.Email,
		FullName:  fullName,
		AvatarURL: identity.AvatarURL,
		Role:      identity.Role,
	}

	if err := s.authorRepo.Upsert(ctx, author); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthorProvision, err)
	}

	return author, nil
}
