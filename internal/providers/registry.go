package providers

import (
	"fmt"
	"sync"

	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

// Registry holds the fixed provider set for one engine instance.
// Providers are iterated in registration order, which keeps fan-out
// deterministic for identical inputs.
type Registry struct {
	mu     sync.RWMutex
	order  []Provider
	byKind map[types.Kind]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[types.Kind]Provider),
	}
}

// Register adds a provider. Provider IDs and kinds must be unique
// within a registry.
func (r *Registry) Register(p Provider) error {
	if p.ID() == "" {
		return fmt.Errorf("provider ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKind[p.Kind()]; exists {
		return fmt.Errorf("provider for kind %q already registered", p.Kind())
	}
	for _, existing := range r.order {
		if existing.ID() == p.ID() {
			return fmt.Errorf("provider %q already registered", p.ID())
		}
	}

	r.order = append(r.order, p)
	r.byKind[p.Kind()] = p
	return nil
}

// ByKind retrieves the provider owning a candidate kind.
func (r *Registry) ByKind(kind types.Kind) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byKind[kind]
	return p, ok
}

// List returns all providers in registration order.
func (r *Registry) List() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Provider, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
