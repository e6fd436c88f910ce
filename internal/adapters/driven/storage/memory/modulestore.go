// Package memory provides in-memory store implementations used in tests
// and as lightweight defaults when persistence is not configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
)

// Ensure ModuleStore implements the interface.
var _ driven.ModuleStore = (*ModuleStore)(nil)

// ModuleStore is an in-memory implementation of driven.ModuleStore.
type ModuleStore struct {
	mu      sync.RWMutex
	modules map[string]domain.Module
	runs    []domain.ScrapeRun
}

// NewModuleStore creates a new in-memory module store.
func NewModuleStore() *ModuleStore {
	return &ModuleStore{
		modules: make(map[string]domain.Module),
	}
}

// SaveRun records a scrape run and its modules.
func (s *ModuleStore) SaveRun(_ context.Context, run domain.ScrapeRun, modules []domain.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	for _, m := range modules {
		s.modules[m.Code] = m
	}
	return nil
}

// ListModules returns all cached modules, ordered by code.
func (s *ModuleStore) ListModules(_ context.Context) ([]domain.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.modules))
	for code := range s.modules {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	modules := make([]domain.Module, 0, len(codes))
	for _, code := range codes {
		modules = append(modules, s.modules[code])
	}
	return modules, nil
}

// GetModule retrieves one cached module by code.
func (s *ModuleStore) GetModule(_ context.Context, code string) (*domain.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.modules[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

// LatestRun returns the most recently saved run.
func (s *ModuleStore) LatestRun(_ context.Context) (*domain.ScrapeRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.runs) == 0 {
		return nil, domain.ErrNotFound
	}
	run := s.runs[len(s.runs)-1]
	return &run, nil
}

// Close is a no-op for the in-memory store.
func (s *ModuleStore) Close() error {
	return nil
}
