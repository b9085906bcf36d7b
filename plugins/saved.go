package plugins

import (
	"regexp"
	"strings"

	"github.com/qlquery/qlquery/match"
	"github.com/qlquery/qlquery/query"
)

var reSavedRef = regexp.MustCompile(`@\(\s*saved\s*:\s*([^)]*)\)`)

// Saved expands named saved search:
//
//	@(saved: favorites)
//
// Saved searches can refer to each other, cycles are rejected.
type Saved struct {
	searches map[string]string
	opts     []query.Option
}

// NewSaved creates plugin for the saved searches (name -> query)
func NewSaved(searches map[string]string, opts ...query.Option) *Saved {
	copied := make(map[string]string, len(searches))
	for name, search := range searches {
		copied[name] = search
	}

	return &Saved{searches: copied, opts: opts}
}

// ParseBody parses saved search, which might be free text
func (p *Saved) ParseBody(body *string) (interface{}, error) {
	name, err := bodyText("saved", body)
	if err != nil {
		return nil, err
	}

	search, ok := p.searches[name]
	if !ok {
		return nil, match.NewPluginError("saved", "no saved search %q", name)
	}

	if p.cyclic(name, map[string]bool{}) {
		return nil, match.NewPluginError("saved", "saved search %q refers to itself", name)
	}

	q := query.New(search, p.opts...)
	if !q.IsParsable() {
		return nil, match.NewPluginError("saved", "saved search %q is invalid: %s", name, search)
	}

	return q, nil
}

// cyclic follows references to other saved searches
func (p *Saved) cyclic(name string, visiting map[string]bool) bool {
	if visiting[name] {
		return true
	}
	visiting[name] = true
	defer delete(visiting, name)

	for _, ref := range reSavedRef.FindAllStringSubmatch(p.searches[name], -1) {
		if p.cyclic(strings.TrimSpace(ref[1]), visiting) {
			return true
		}
	}
	return false
}

// Search delegates to the saved query
func (p *Saved) Search(rec match.Record, body interface{}) bool {
	return body.(*query.Query).Search(rec)
}
