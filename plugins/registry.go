// Package plugins provides query extensions @(name: body)
package plugins

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/qlquery/qlquery/match"
	"github.com/qlquery/qlquery/query"
	"github.com/rs/zerolog/log"
)

// Registry keeps plugins by name, it is safe for concurrent use
type Registry struct {
	sync.RWMutex
	plugins map[string]match.Plugin
}

// Check interface
var (
	_ match.PluginSource = &Registry{}
)

// NewRegistry creates empty registry
func NewRegistry() *Registry {
	return &Registry{plugins: map[string]match.Plugin{}}
}

// Default creates registry with all built-in plugins registered,
// opts are used to parse queries nested in extension bodies
func Default(savedSearches map[string]string, opts ...query.Option) *Registry {
	r := NewRegistry()

	nested := append(append([]query.Option(nil), opts...), query.WithPlugins(r))

	for name, plugin := range map[string]match.Plugin{
		"missing": &Missing{},
		"count":   &Count{},
		"if":      &Conditional{opts: nested},
		"saved":   NewSaved(savedSearches, nested...),
	} {
		if err := r.Register(name, plugin); err != nil {
			panic(err)
		}
	}

	return r
}

// Register adds plugin under the name
func (r *Registry) Register(name string, plugin match.Plugin) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plugin name can't be empty")
	}

	r.Lock()
	defer r.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %q is already registered", name)
	}

	r.plugins[name] = plugin
	log.Debug().Str("plugin", name).Msg("registered query plugin")
	return nil
}

// Unregister removes plugin, queries parsed earlier keep using it
func (r *Registry) Unregister(name string) {
	r.Lock()
	defer r.Unlock()

	delete(r.plugins, name)
}

// Names returns sorted names of registered plugins
func (r *Registry) Names() []string {
	r.RLock()
	defer r.RUnlock()

	result := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Plugin looks up plugin by name
func (r *Registry) Plugin(name string) (match.Plugin, bool) {
	r.RLock()
	defer r.RUnlock()

	plugin, ok := r.plugins[name]
	return plugin, ok
}

// bodyText returns trimmed body, failing on missing or empty body
func bodyText(plugin string, body *string) (string, error) {
	if body == nil || strings.TrimSpace(*body) == "" {
		return "", match.NewPluginError(plugin, "missing body")
	}
	return strings.TrimSpace(*body), nil
}
