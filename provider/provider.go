package provider

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/vibematch/semantic"
)

// Error values for consistent error handling by callers.
var (
	ErrNotFound          = errors.New("provider not found")
	ErrInvalidProvider   = errors.New("invalid provider")
	ErrInvalidProviderID = errors.New("invalid provider id")
)

// MockName is the ID of the built-in deterministic mock embedder.
const MockName = "mock"

// Factory builds an embedder producing vectors of dim components.
// A dim <= 0 selects the provider's default.
type Factory func(dim int) (semantic.Embedder, error)

// Provider describes a named embedder implementation.
type Provider struct {
	Name        string
	Version     string
	Description string
	Factory     Factory
}

// Store defines embedder provider discovery operations.
type Store interface {
	// Register registers a provider and returns its resolved ID.
	Register(id string, provider Provider) (string, error)
	// Lookup returns a provider by ID.
	Lookup(id string) (Provider, error)
	// List returns all registered providers in stable order.
	List() ([]Provider, error)
}

// InMemoryStore stores providers in memory.
type InMemoryStore struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewInMemoryStore creates a new provider store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		providers: make(map[string]Provider),
	}
}

// Default returns a store holding the built-in providers.
func Default() *InMemoryStore {
	s := NewInMemoryStore()
	_, _ = s.Register(MockName, Provider{
		Name:        MockName,
		Description: "Deterministic pseudo-random vectors seeded from the text",
		Factory: func(dim int) (semantic.Embedder, error) {
			return semantic.NewMockEmbedder(dim), nil
		},
	})
	return s
}

// ProviderID returns a stable provider ID from name/version.
func ProviderID(name, version string) string {
	if name == "" {
		return ""
	}
	if version == "" {
		return name
	}
	return name + ":" + version
}

// Register registers a provider and returns its resolved ID.
// Registering an existing ID replaces the provider.
func (s *InMemoryStore) Register(id string, provider Provider) (string, error) {
	if provider.Name == "" || provider.Factory == nil {
		return "", ErrInvalidProvider
	}
	if id == "" {
		id = ProviderID(provider.Name, provider.Version)
	}
	if id == "" {
		return "", ErrInvalidProviderID
	}

	s.mu.Lock()
	s.providers[id] = provider
	s.mu.Unlock()

	return id, nil
}

// Lookup returns a provider by ID.
func (s *InMemoryStore) Lookup(id string) (Provider, error) {
	if id == "" {
		return Provider{}, ErrInvalidProviderID
	}

	s.mu.RLock()
	provider, ok := s.providers[id]
	s.mu.RUnlock()

	if !ok {
		return Provider{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return provider, nil
}

// List returns all registered providers sorted by ID.
func (s *InMemoryStore) List() ([]Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.providers))
	for id := range s.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]Provider, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.providers[id])
	}
	return result, nil
}

// Embedder resolves id in store and builds an embedder with dim components.
func Embedder(store Store, id string, dim int) (semantic.Embedder, error) {
	p, err := store.Lookup(id)
	if err != nil {
		return nil, err
	}
	e, err := p.Factory(dim)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", id, err)
	}
	if e == nil {
		return nil, fmt.Errorf("%w: %s returned nil embedder", ErrInvalidProvider, id)
	}
	return e, nil
}
