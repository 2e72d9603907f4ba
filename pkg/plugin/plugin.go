// Package plugin bundles custom matchers so they can be
// installed into every registry a suite run creates.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.matchers/pkg/matcher"
)

// Plugin extends a matcher registry.
type Plugin interface {
	// Name returns the plugin's unique name.
	Name() string
	// Version returns the plugin's version string.
	Version() string
	// Init installs the plugin's matchers into ctx.Registry.
	Init(ctx *Context) error
}

// Context is what a plugin sees while it is installed.
type Context struct {
	Registry *matcher.Registry
	Config   map[string]any
}

// Registry manages plugin registration and installation.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	config  map[string]any
}

// NewRegistry creates a new plugin registry. config is handed to
// every plugin on installation.
func NewRegistry(config map[string]any) *Registry {
	if config == nil {
		config = make(map[string]any)
	}
	return &Registry{
		plugins: make(map[string]Plugin),
		config:  config,
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return fmt.Errorf("plugin cannot be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}

	r.plugins[name] = p
	return nil
}

// RegisterAll registers each plugin and stops at the first error.
func (r *Registry) RegisterAll(plugins ...Plugin) error {
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			return fmt.Errorf("load plugin: %w", err)
		}
	}
	return nil
}

// Get retrieves a registered plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// Install initializes every plugin, in name order, against reg.
// Plugins installed later win on matcher name conflicts. Its
// signature matches suite.SetupFunc.
func (r *Registry) Install(reg *matcher.Registry) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctx := &Context{Registry: reg, Config: r.config}
	for _, name := range r.names() {
		if err := r.plugins[name].Init(ctx); err != nil {
			return fmt.Errorf("init plugin %q: %w", name, err)
		}
	}
	return nil
}

// List returns all registered plugin names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}
