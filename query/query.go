// Package query implements Quod Libet style query language
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/qlquery/qlquery/match"
	"github.com/rs/zerolog/log"
)

/*

  Query := '' | '!' Query | '&(' Query {',' Query} ')' | '|(' Query {',' Query} ')'
         | '#(' Numcmp {',' Numcmp} ')' | '@' Extension | Equals | NotEquals | Star
  Equals := Tag {',' Tag} '=' Value
  NotEquals := Tag {',' Tag} '!=' Value
  Value := '/' Regexp '/' Mods | '"' String '"' Mods | "'" String "'" Mods
         | '!' Value | '|(' Value {',' Value} ')' | '&(' Value {',' Value} ')' | Text
  Star := Value                 (Text is not allowed at top level)
  Numcmp := Numexpr RelOp Numexpr {RelOp Numexpr}
  Numexpr := Operand {BinOp Operand}
  Operand := '(' Numexpr ')' | '-' Operand | Date | Number [':' Number] [Unit] | Tag | now | today
  Extension := '(' Word [':' Body] ')'
  Mods := [cisld]*

  Strings which don't follow the grammar are treated as free text: every word
  is searched in default tags, unless string contains '#' or '='.
*/

// Type is classification of query string
type Type int

// Query types
const (
	// Valid query follows the grammar
	Valid Type = iota
	// Text is free text search
	Text
	// Invalid query matches nothing
	Invalid
)

func (t Type) String() string {
	switch t {
	case Valid:
		return "VALID"
	case Text:
		return "TEXT"
	}
	return "INVALID"
}

// MarshalText implements encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// DefaultStar is list of tags searched by free text
var DefaultStar = []string{"artist", "album", "title", "version", "performer", "composer", "albumartist", "genre"}

type options struct {
	star    []string
	plugins match.PluginSource
	ignored string
	clock   func() time.Time
}

// Option configures parsing of queries
type Option func(*options)

// WithStar sets tags used for free text search
func WithStar(star []string) Option {
	return func(o *options) {
		o.star = append([]string(nil), star...)
	}
}

// WithPlugins sets source of extension plugins
func WithPlugins(plugins match.PluginSource) Option {
	return func(o *options) {
		o.plugins = plugins
	}
}

// WithIgnoredCharacters sets characters removed from free text queries
func WithIgnoredCharacters(chars string) Option {
	return func(o *options) {
		o.ignored = chars
	}
}

// WithClock sets source of current time for numeric comparisons
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		star:  DefaultStar,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Query is parsed query string, immutable and safe for concurrent use
type Query struct {
	source string
	typ    Type
	star   []string
	node   match.Node
}

// Parse parses query strictly according to the grammar
func Parse(s string, opts ...Option) (match.Node, error) {
	return parse(newLexer("", s), newOptions(opts))
}

// New parses query string, falling back to free text search
//
// New never fails: queries which can't be parsed at all are Invalid
// and match nothing.
func New(s string, opts ...Option) *Query {
	o := newOptions(opts)
	q := &Query{source: s, star: o.star}

	node, err := parse(newLexer("query", s), o)
	if err == nil {
		q.typ = Valid
		q.node = node
		return q
	}

	if !strings.ContainsAny(s, "#=") {
		q.source = freeText(s, o.ignored)

		node, err = parse(newLexer("text", q.source), o)
		if err == nil {
			log.Debug().Str("query", s).Str("text", q.source).Msg("query parsed as free text")
			q.typ = Text
			q.node = node
			return q
		}
	}

	log.Debug().Str("query", s).Err(err).Msg("query is invalid")
	q.source = s
	q.typ = Invalid
	q.node = match.Nothing
	return q
}

// freeText converts words into intersection of diacritic insensitive regexps
func freeText(s, ignored string) string {
	for _, c := range ignored {
		s = strings.ReplaceAll(s, string(c), "")
	}

	words := strings.Fields(s)
	for i := range words {
		words[i] = "/" + match.QuoteRegex(words[i]) + "/d"
	}

	return "&(" + strings.Join(words, ",") + ")"
}

// Type returns classification of the query
func (q *Query) Type() Type {
	return q.typ
}

// Source returns query string, free text is returned rewritten while
// invalid queries keep the input, so error positions point into it
func (q *Query) Source() string {
	return q.source
}

// Star returns tags used for free text search
func (q *Query) Star() []string {
	return append([]string(nil), q.star...)
}

// Matcher returns compiled query
func (q *Query) Matcher() match.Node {
	return q.node
}

// Search checks whether record matches the query
func (q *Query) Search(rec match.Record) bool {
	return q.node.Search(rec)
}

// Filter returns matching records
func (q *Query) Filter(records []match.Record) []match.Record {
	return match.Filter(q.node, records)
}

// MatchesAll is true if query matches any record (e.g. empty query)
func (q *Query) MatchesAll() bool {
	_, ok := q.node.(*match.True)
	return ok
}

// Valid is true if query follows the grammar
//
// This is query classification, unlike Valid of match.Node which tells
// whether extensions are set up, so pass Matcher where a match.Node is needed
func (q *Query) Valid() bool {
	return q.typ == Valid
}

// IsParsable is true if query is either valid or free text
func (q *Query) IsParsable() bool {
	return q.typ != Invalid
}

func (q *Query) String() string {
	return fmt.Sprintf("<Query string='%s' type=%s star=%v>", q.source, q.typ, q.star)
}

func unpack(n match.Node) match.Node {
	if q, ok := n.(*Query); ok {
		return q.node
	}
	return n
}

// And combines query with other query or node
func (q *Query) And(other match.Node) match.Node {
	return match.And(q.node, unpack(other))
}

// Or combines query with other query or node
func (q *Query) Or(other match.Node) match.Node {
	return match.Or(q.node, unpack(other))
}

// Not negates the query
func (q *Query) Not() match.Node {
	return match.Not(q.node)
}

// GetType classifies query string
func GetType(s string, opts ...Option) Type {
	return New(s, opts...).Type()
}

// Validator returns true for valid non-trivial queries, false for invalid
// queries and nil for free text and queries matching everything
func Validator(s string, opts ...Option) *bool {
	return New(s, opts...).Validator()
}

// Validator is tri-state validity of the query, see package level Validator
func (q *Query) Validator() *bool {
	switch q.Type() {
	case Valid:
		if q.MatchesAll() {
			return nil
		}
		return pointer.ToBool(true)
	case Invalid:
		return pointer.ToBool(false)
	}
	return nil
}
