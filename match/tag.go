package match

import (
	"fmt"
	"strings"
)

// abbreviations for common tags
var tagAbbrs = map[string]string{
	"a": "artist",
	"b": "album",
	"v": "version",
	"t": "title",
	"n": "tracknumber",
	"d": "date",
}

// Tag matches if value of any of the tags matches
type Tag struct {
	Value Value

	names  []string
	intern []string
	fs     []string
}

// NewTag resolves tag names (abbreviations, internal and filesystem tags)
func NewTag(names []string, value Value) (*Tag, error) {
	t := &Tag{Value: value}

	for _, name := range names {
		name = strings.ToLower(name)
		if full, ok := tagAbbrs[name]; ok {
			name = full
		}

		switch {
		case strings.HasPrefix(name, "~#"):
			return nil, &ParseError{Kind: KindSyntax, Message: "numeric tags not supported", Pos: -1}
		case IsFSTag(name):
			t.fs = append(t.fs, name)
		case strings.HasPrefix(name, "~"):
			t.intern = append(t.intern, name)
		default:
			t.names = append(t.names, name)
		}
	}

	return t, nil
}

// Names returns resolved tag names
func (t *Tag) Names() []string {
	result := make([]string, 0, len(t.names)+len(t.intern)+len(t.fs))
	result = append(result, t.names...)
	result = append(result, t.intern...)
	return append(result, t.fs...)
}

// Search checks all the tags in turn
func (t *Tag) Search(rec Record) bool {
	for _, name := range t.names {
		val, ok := rec.Get(name)
		if !ok {
			if name == "filename" || name == "mountpoint" {
				val, _ = rec.FSPath("~" + name)
			} else {
				val, _ = rec.Get("~" + name)
			}
		}
		if t.Value.MatchString(val) {
			return true
		}
	}

	for _, name := range t.intern {
		values := rec.List(name)
		if len(values) == 0 {
			values = []string{""}
		}
		for _, val := range values {
			if t.Value.MatchString(val) {
				return true
			}
		}
	}

	for _, name := range t.fs {
		val, _ := rec.FSPath(name)
		if t.Value.MatchString(val) {
			return true
		}
	}

	return false
}

// Valid is always true
func (t *Tag) Valid() bool {
	return true
}

func (t *Tag) String() string {
	return fmt.Sprintf("<Tag names=[%s] value=%s>", strings.Join(t.Names(), " "), t.Value)
}
