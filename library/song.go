// Package library provides songs: records queries are evaluated against
package library

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// Song is a set of tags, tags starting with "~#" are numeric
//
// Multiple values of the same tag are separated with "\n".
type Song struct {
	tags    map[string]string
	numbers map[string]float64
}

// Tags contributing to ~people
var peopleTags = []string{"albumartist", "artist", "author", "composer", "performer", "originalartist", "lyricist", "arranger", "conductor"}

// Numeric tags with values for songs which don't have them
var numericDefaults = map[string]float64{
	"~#rating":    0.5,
	"~#playcount": 0,
	"~#skipcount": 0,
}

// NewSong builds song out of decoded fields
func NewSong(fields map[string]interface{}) (*Song, error) {
	s := &Song{
		tags:    make(map[string]string, len(fields)),
		numbers: map[string]float64{},
	}

	for key, value := range fields {
		if strings.HasPrefix(key, "~#") {
			num, err := toNumber(value)
			if err != nil {
				return nil, errors.Wrapf(err, "tag %s", key)
			}
			s.numbers[key] = num
			continue
		}

		str, err := toString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %s", key)
		}
		s.tags[key] = str
	}

	return s, nil
}

func toNumber(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	}
	return 0, errors.Errorf("unsupported numeric value %v", value)
}

func toString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case []interface{}:
		parts := make([]string, len(v))
		for i := range v {
			part, err := toString(v[i])
			if err != nil {
				return "", err
			}
			parts[i] = part
		}
		return strings.Join(parts, "\n"), nil
	case nil:
		return "", errors.New("empty value")
	}
	return fmt.Sprint(value), nil
}

// Fields returns tags and numeric tags of the song
func (s *Song) Fields() map[string]interface{} {
	result := make(map[string]interface{}, len(s.tags)+len(s.numbers))
	for k, v := range s.tags {
		result[k] = v
	}
	for k, v := range s.numbers {
		result[k] = v
	}
	return result
}

// Keys returns sorted names of tags set on the song
func (s *Song) Keys() []string {
	result := make([]string, 0, len(s.tags)+len(s.numbers))
	for k := range s.tags {
		result = append(result, k)
	}
	for k := range s.numbers {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// Get returns value of the tag, internal tags (~people, ~dirname)
// are computed
func (s *Song) Get(key string) (string, bool) {
	if strings.HasPrefix(key, "~#") {
		num, ok := s.Numeric(key)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(num, 'f', -1, 64), true
	}

	if value, ok := s.tags[key]; ok {
		return value, true
	}

	switch key {
	case "~basename", "~dirname", "~filename", "~mountpoint":
		return s.FSPath(key)
	case "~people":
		people := s.people()
		if len(people) == 0 {
			return "", false
		}
		return strings.Join(people, "\n"), true
	}

	return "", false
}

// List returns all the values of the tag
func (s *Song) List(key string) []string {
	if key == "~people" {
		return s.people()
	}

	value, ok := s.Get(key)
	if !ok {
		return nil
	}
	return strings.Split(value, "\n")
}

func (s *Song) people() []string {
	var result []string
	seen := map[string]bool{}

	for _, tag := range peopleTags {
		value, ok := s.tags[tag]
		if !ok {
			continue
		}
		for _, person := range strings.Split(value, "\n") {
			if !seen[person] {
				seen[person] = true
				result = append(result, person)
			}
		}
	}

	return result
}

// Numeric returns value of numeric tag, some tags are computed out of
// textual ones (~#track out of tracknumber)
func (s *Song) Numeric(key string) (float64, bool) {
	if num, ok := s.numbers[key]; ok {
		return num, true
	}

	switch key {
	case "~#track":
		return s.numberPart("tracknumber", 0)
	case "~#tracks":
		return s.numberPart("tracknumber", 1)
	case "~#disc":
		return s.numberPart("discnumber", 0)
	case "~#discs":
		return s.numberPart("discnumber", 1)
	case "~#year":
		date := s.tags["date"]
		if len(date) < 4 {
			return 0, false
		}
		year, err := strconv.Atoi(date[:4])
		if err != nil {
			return 0, false
		}
		return float64(year), true
	}

	num, ok := numericDefaults[key]
	return num, ok
}

// numberPart parses values like "12/15"
func (s *Song) numberPart(tag string, part int) (float64, bool) {
	parts := strings.SplitN(s.tags[tag], "/", 2)
	if part >= len(parts) {
		return 0, false
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[part]))
	if err != nil {
		return 0, false
	}
	return float64(num), true
}

// FSPath returns filesystem related tag
func (s *Song) FSPath(key string) (string, bool) {
	if value, ok := s.tags[key]; ok {
		return value, true
	}

	filename, ok := s.tags["~filename"]
	if !ok {
		return "", false
	}

	switch key {
	case "~basename":
		return filepath.Base(filename), true
	case "~dirname":
		return filepath.Dir(filename), true
	}

	return "", false
}

func (s *Song) String() string {
	if title, ok := s.tags["title"]; ok {
		if artist, ok := s.tags["artist"]; ok {
			return fmt.Sprintf("%s - %s", strings.ReplaceAll(artist, "\n", ", "), title)
		}
		return title
	}
	if filename, ok := s.tags["~filename"]; ok {
		return filename
	}
	return "<untitled>"
}

var jsonHandle = &codec.JsonHandle{}

// MarshalJSON encodes song as flat JSON object
func (s *Song) MarshalJSON() ([]byte, error) {
	var buf []byte
	err := codec.NewEncoderBytes(&buf, jsonHandle).Encode(s.Fields())
	return buf, err
}

// UnmarshalJSON decodes song from flat JSON object
func (s *Song) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := codec.NewDecoderBytes(data, jsonHandle).Decode(&fields); err != nil {
		return err
	}

	song, err := NewSong(fields)
	if err != nil {
		return err
	}
	*s = *song
	return nil
}
