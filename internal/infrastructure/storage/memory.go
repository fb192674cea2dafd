package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/streamvault/catalog/internal/domain/video"
)

// MemoryService keeps resources in process memory. Used in tests and
// local development.
type MemoryService struct {
	mu        sync.RWMutex
	resources map[string]video.Resource
}

// NewMemoryService creates an empty in-memory storage service
func NewMemoryService() *MemoryService {
	return &MemoryService{resources: make(map[string]video.Resource)}
}

// Store saves the resource under the given name, overwriting any
// previous value.
func (s *MemoryService) Store(ctx context.Context, name string, resource video.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[name] = resource
	return nil
}

// Get returns the resource stored under name, or nil when absent
func (s *MemoryService) Get(ctx context.Context, name string) (*video.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	resource, ok := s.resources[name]
	if !ok {
		return nil, nil
	}
	return &resource, nil
}

// List returns the names stored under the given prefix, sorted
func (s *MemoryService) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	for name := range s.resources {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DeleteAll removes every named resource; absent names are ignored
func (s *MemoryService) DeleteAll(ctx context.Context, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		delete(s.resources, name)
	}
	return nil
}
