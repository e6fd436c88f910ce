package memory

import (
	"context"
	"sync"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
)

// Ensure DatasetStore implements the interface.
var _ driven.DatasetStore = (*DatasetStore)(nil)

// DatasetStore is an in-memory implementation of driven.DatasetStore.
type DatasetStore struct {
	mu      sync.RWMutex
	dataset *domain.Dataset
}

// NewDatasetStore creates a new in-memory dataset store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{}
}

// Save stores the dataset, replacing any previous one.
func (s *DatasetStore) Save(_ context.Context, d *domain.Dataset) error {
	if d == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *d
	s.dataset = &copied
	return nil
}

// Load returns the stored dataset.
func (s *DatasetStore) Load(_ context.Context) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return nil, domain.ErrNoDataset
	}
	copied := *s.dataset
	return &copied, nil
}

// Path identifies the store for display.
func (s *DatasetStore) Path() string {
	return "memory"
}
