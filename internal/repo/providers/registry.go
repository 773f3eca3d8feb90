package providers

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the configured search providers. Registration order is
// preserved so aggregate search results are deterministic for a given
// configuration; adding a provider requires no orchestrator change.
type Registry interface {
	Register(provider SearchProvider) error
	Get(name string) (SearchProvider, bool)
	Providers() []SearchProvider
}

type registry struct {
	mu      sync.RWMutex
	ordered []SearchProvider
	byName  map[string]SearchProvider
}

func NewRegistry() Registry {
	return &registry{
		byName: make(map[string]SearchProvider),
	}
}

func (r *registry) Register(provider SearchProvider) error {
	if provider == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	name := strings.ToLower(strings.TrimSpace(provider.Name()))
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}
	r.byName[name] = provider
	r.ordered = append(r.ordered, provider)
	return nil
}

func (r *registry) Get(name string) (SearchProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Providers returns the registered providers in registration order.
func (r *registry) Providers() []SearchProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SearchProvider, len(r.ordered))
	copy(out, r.ordered)
	return out
}
