package match

import (
	"fmt"
)

// Plugin implements query extension @(name: body)
type Plugin interface {
	// ParseBody prepares body for Search, body is nil for @(name);
	// *PluginError is returned for bad body
	ParseBody(body *string) (interface{}, error)
	// Search checks record against parsed body
	Search(rec Record, body interface{}) bool
}

// PluginSource looks up plugins by name
type PluginSource interface {
	Plugin(name string) (Plugin, bool)
}

// Extension delegates matching to plugin
type Extension struct {
	Name    string
	RawBody *string
	Body    interface{}

	plugin Plugin
	valid  bool
}

// NewExtension looks up plugin and lets it parse the body
//
// Extension is returned even on error, marked as invalid.
func NewExtension(name string, body *string, source PluginSource) (*Extension, error) {
	e := &Extension{Name: name, RawBody: body}

	var plugin Plugin
	ok := false
	if source != nil {
		plugin, ok = source.Plugin(name)
	}
	if !ok {
		return e, &ParseError{Kind: KindPlugin, Message: fmt.Sprintf("no query plugin %q", name), Pos: -1}
	}

	parsed, err := plugin.ParseBody(body)
	if err != nil {
		return e, &ParseError{Kind: KindPlugin, Message: fmt.Sprintf("plugin %q rejected body: %s", name, err), Pos: -1, Err: err}
	}

	e.plugin = plugin
	e.Body = parsed
	e.valid = true
	return e, nil
}

// Search is delegated to plugin
func (e *Extension) Search(rec Record) bool {
	return e.valid && e.plugin.Search(rec, e.Body)
}

// Valid if plugin accepted the body
func (e *Extension) Valid() bool {
	return e.valid
}

func (e *Extension) String() string {
	body := "<nil>"
	if e.RawBody != nil {
		body = fmt.Sprintf("%q", *e.RawBody)
	}
	return fmt.Sprintf("<Extension name=%s valid=%v body=%s>", e.Name, e.valid, body)
}
