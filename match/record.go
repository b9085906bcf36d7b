package match

// Record is something queries are evaluated against (usually a song)
type Record interface {
	// Get returns string value of the tag, multiple values are joined with "\n"
	Get(key string) (string, bool)
	// List returns all the values of the tag
	List(key string) []string
	// Numeric returns value of "~#" tags
	Numeric(key string) (float64, bool)
	// FSPath returns filesystem tag (~filename, ~dirname, ...) as text
	FSPath(key string) (string, bool)
}

// Filesystem tags, decoded as paths
var fsTags = map[string]bool{
	"~filename":   true,
	"~basename":   true,
	"~dirname":    true,
	"~mountpoint": true,
}

// IsFSTag checks whether tag is filesystem tag
func IsFSTag(tag string) bool {
	return fsTags[tag]
}

// Tags stored as absolute timestamps, compared as "time since"
var timeTags = map[string]bool{
	"~#added":       true,
	"~#mtime":       true,
	"~#lastplayed":  true,
	"~#laststarted": true,
}

// IsTimeTag checks whether numeric tag holds timestamp
func IsTimeTag(tag string) bool {
	return timeTags[tag]
}
