// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry manages renderers by name and alias.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	aliases   map[string]string
}

// globalRegistry holds the built-in renderers.
var globalRegistry = NewRegistry()

func init() {
	globalRegistry.MustRegister(NewJSONRenderer())
	globalRegistry.MustRegister(NewMarkdownRenderer())
	globalRegistry.MustRegister(NewOpenAPIRenderer())
	globalRegistry.MustRegister(NewReactRenderer())
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		aliases:   make(map[string]string),
	}
}

// Register adds a renderer and its aliases.
// It returns an error if the name or an alias is already taken.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("cannot register nil renderer")
	}

	name := strings.ToLower(renderer.Name())
	if name == "" {
		return fmt.Errorf("renderer name cannot be empty")
	}

	var aliases []string
	if a, ok := renderer.(Aliaser); ok {
		for _, alias := range a.Aliases() {
			aliases = append(aliases, strings.ToLower(alias))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range append([]string{name}, aliases...) {
		if r.taken(key) {
			return fmt.Errorf("renderer %q is already registered", key)
		}
	}

	r.renderers[name] = renderer
	for _, alias := range aliases {
		r.aliases[alias] = name
	}
	return nil
}

func (r *Registry) taken(key string) bool {
	if _, exists := r.renderers[key]; exists {
		return true
	}
	_, exists := r.aliases[key]
	return exists
}

// MustRegister adds a renderer to the registry, panicking on error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(fmt.Sprintf("failed to register renderer: %v", err))
	}
}

// Get returns a renderer by name or alias, or nil if not found.
// Lookup is case-insensitive.
func (r *Registry) Get(name string) Renderer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.ToLower(name)
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	return r.renderers[name]
}

// Lookup is Get with an error listing the known formats.
func (r *Registry) Lookup(name string) (Renderer, error) {
	if renderer := r.Get(name); renderer != nil {
		return renderer, nil
	}
	return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(r.List(), ", "))
}

// List returns a sorted list of registered renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered renderers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.renderers)
}

// Has checks if a name or alias is registered.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// --- Global Registry Functions ---

// Register adds a renderer to the global registry.
func Register(renderer Renderer) error {
	return globalRegistry.Register(renderer)
}

// Get returns a renderer by name or alias from the global registry.
func Get(name string) Renderer {
	return globalRegistry.Get(name)
}

// Lookup returns a renderer from the global registry or an error.
func Lookup(name string) (Renderer, error) {
	return globalRegistry.Lookup(name)
}

// List returns all registered renderer names from the global registry.
func List() []string {
	return globalRegistry.List()
}

// Has checks if a renderer is registered in the global registry.
func Has(name string) bool {
	return globalRegistry.Has(name)
}

// Global returns the global registry instance.
func Global() *Registry {
	return globalRegistry
}
