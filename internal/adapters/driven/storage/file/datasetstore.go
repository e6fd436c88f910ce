// Package file provides the JSON file-backed dataset store. The dataset
// document is the interchange format between pipeline stages and must
// round-trip losslessly.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
)

// DefaultFileName is the dataset document name within the data directory.
const DefaultFileName = "taxonomy.json"

// Ensure DatasetStore implements the interface.
var _ driven.DatasetStore = (*DatasetStore)(nil)

// DatasetStore persists the dataset as a single indented JSON document.
type DatasetStore struct {
	path string
}

// NewDatasetStore creates a dataset store at the given path. An empty
// path defaults to ~/.taxo/data/taxonomy.json.
func NewDatasetStore(path string) (*DatasetStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".taxo", "data", DefaultFileName)
	}
	return &DatasetStore{path: path}, nil
}

// Path returns the dataset file location.
func (s *DatasetStore) Path() string {
	return s.path
}

// Save writes the dataset, replacing any previous document.
func (s *DatasetStore) Save(_ context.Context, d *domain.Dataset) error {
	if d == nil {
		return domain.ErrInvalidInput
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}

// Load reads the dataset document back.
func (s *DatasetStore) Load(_ context.Context) (*domain.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoDataset
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var d domain.Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return &d, nil
}
