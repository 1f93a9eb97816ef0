// Package storage holds the resume document store. The repository is the
// single entry point for document state; scoring and export take documents
// as plain values and never reach into storage themselves.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cv-builder/internal/domain"
)

// ErrNotFound is returned when a user has no stored document.
var ErrNotFound = errors.New("storage: resume not found")

// ResumeRepository is the injected document store.
type ResumeRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ResumeDocument, error)
	Set(ctx context.Context, userID uuid.UUID, doc *domain.ResumeDocument) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ExportLogger records finished exports. Logging is best-effort; callers
// may ignore errors.
type ExportLogger interface {
	LogExport(ctx context.Context, userID uuid.UUID, template, fileName string, pages int) error
}
