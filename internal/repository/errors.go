package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrSlugTaken maps the unique constraint on (project_id, slug).
	ErrSlugTaken = errors.New("slug already taken")

	// ErrIdempotencyKeyUsed maps the unique constraint on
	// (author_id, idempotency_key): the first save of this post already
	// produced a row.
	ErrIdempotencyKeyUsed = errors.New("idempotency key already used")

	// ErrReferenceMissing maps foreign key violations: the post points at an
	// author, project or media asset that does not exist.
	ErrReferenceMissing = errors.New("author or project missing")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateError converts driver-level constraint violations into the
// package sentinels so callers can use errors.Is instead of matching on
// message text.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		if strings.Contains(pqErr.Constraint, "slug") {
			return ErrSlugTaken
		}
		if strings.Contains(pqErr.Constraint, "idempotency") {
			return ErrIdempotencyKeyUsed
		}
	case pqForeignKeyViolation:
		return ErrReferenceMissing
	}
	return err
}
