package plugins

import (
	"strings"

	"github.com/qlquery/qlquery/match"
)

// Missing matches records which have none of the listed tags:
//
//	@(missing: album, date)
type Missing struct{}

// ParseBody splits body into tag names
func (*Missing) ParseBody(body *string) (interface{}, error) {
	text, err := bodyText("missing", body)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, tag := range strings.Split(text, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			return nil, match.NewPluginError("missing", "empty tag name in %q", text)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// Search is true if record has none of the tags
func (*Missing) Search(rec match.Record, body interface{}) bool {
	for _, tag := range body.([]string) {
		if match.IsFSTag(tag) {
			if _, ok := rec.FSPath(tag); ok {
				return false
			}
			continue
		}
		if _, ok := rec.Get(tag); ok {
			return false
		}
	}
	return true
}
