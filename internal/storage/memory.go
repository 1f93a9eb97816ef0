package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"cv-builder/internal/domain"
)

// MemoryRepository keeps documents in process memory. It backs tests and
// DB-less startup. Documents are stored marshaled so callers never share
// mutable state with the repository.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: map[uuid.UUID][]byte{}}
}

func (m *MemoryRepository) Get(_ context.Context, userID uuid.UUID) (*domain.ResumeDocument, error) {
	m.mu.RLock()
	raw, ok := m.docs[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var doc domain.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MemoryRepository) Set(_ context.Context, userID uuid.UUID, doc *domain.ResumeDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[userID] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) Clear(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	delete(m.docs, userID)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) LogExport(_ context.Context, _ uuid.UUID, _, _ string, _ int) error {
	return nil
}
