// Package catalog holds the static IAM action tables of every supported AWS
// service, loaded from the YAML files embedded under services/.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"iamcatalog/internal/domain"
)

// ErrUnknownService is returned when a prefix is not in the catalog
var ErrUnknownService = errors.New("unknown service")

// Registry maps service prefixes to their definitions. It is not modified
// after loading and is safe for concurrent reads.
type Registry struct {
	services map[string]*domain.ServiceDefinition
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the embedded catalog. The embedded tables are checked by the
// package tests, so a load failure here means the binary itself is broken.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := loadEmbedded()
		if err != nil {
			panic("failed to load embedded service catalog: " + err.Error())
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

func newRegistry() *Registry {
	return &Registry{services: make(map[string]*domain.ServiceDefinition)}
}

func (r *Registry) add(def *domain.ServiceDefinition) error {
	if _, exists := r.services[def.Prefix]; exists {
		return fmt.Errorf("duplicate service prefix %q", def.Prefix)
	}
	r.services[def.Prefix] = def
	return nil
}

// Merge returns a new registry with the services of other replacing those of r
func (r *Registry) Merge(other *Registry) *Registry {
	merged := newRegistry()
	for prefix, def := range r.services {
		merged.services[prefix] = def
	}
	for prefix, def := range other.services {
		merged.services[prefix] = def
	}
	return merged
}

// Lookup returns the definition registered for prefix
func (r *Registry) Lookup(prefix string) (*domain.ServiceDefinition, error) {
	def, ok := r.services[prefix]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, prefix)
	}
	return def, nil
}

// MustLookup is Lookup for prefixes known to be embedded
func (r *Registry) MustLookup(prefix string) *domain.ServiceDefinition {
	def, err := r.Lookup(prefix)
	if err != nil {
		panic(err)
	}
	return def
}

// Prefixes returns every registered prefix, sorted
func (r *Registry) Prefixes() []string {
	prefixes := make([]string, 0, len(r.services))
	for prefix := range r.services {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// Services returns every definition, ordered by prefix
func (r *Registry) Services() []*domain.ServiceDefinition {
	out := make([]*domain.ServiceDefinition, 0, len(r.services))
	for _, prefix := range r.Prefixes() {
		out = append(out, r.services[prefix])
	}
	return out
}

// Len returns the number of registered services
func (r *Registry) Len() int {
	return len(r.services)
}

// FindAction splits "prefix:Action" and looks the action up. IAM matches
// action names case-insensitively, so does this. The service is returned
// whenever the prefix is known, even if the action is not.
func (r *Registry) FindAction(actionID string) (*domain.ServiceDefinition, domain.ActionDefinition, bool) {
	prefix, name, ok := strings.Cut(actionID, ":")
	if !ok {
		return nil, domain.ActionDefinition{}, false
	}
	def, exists := r.services[strings.ToLower(prefix)]
	if !exists {
		return nil, domain.ActionDefinition{}, false
	}
	if action, found := def.Action(name); found {
		return def, action, true
	}
	for candidate := range def.Actions {
		if strings.EqualFold(candidate, name) {
			action, _ := def.Action(candidate)
			return def, action, true
		}
	}
	return def, domain.ActionDefinition{}, false
}
