package match

import (
	"fmt"
	"strings"

	"github.com/qlquery/qlquery/unisearch"
)

// Value is compiled right-hand side of tag query
type Value interface {
	// MatchString checks whether tag value matches
	MatchString(s string) bool
	// String interface
	String() string
}

// Regex is regular expression with query modifiers
type Regex struct {
	Pattern string
	Mods    string
	matcher *unisearch.Matcher
}

// ValueUnion matches if any of the values matches
type ValueUnion struct {
	Values []Value
}

// ValueInter matches if all of the values match
type ValueInter struct {
	Values []Value
}

// ValueNeg matches if value doesn't match
type ValueNeg struct {
	Value Value
}

// NewRegex compiles pattern according to modifiers:
//
//	c - case sensitive (unless i is present as well)
//	i - case insensitive (default)
//	s - dot matches newline
//	d - ignore diacritics
//	l - accepted and ignored
func NewRegex(pattern, mods string) (*Regex, error) {
	opts := unisearch.Options{
		IgnoreCase: !strings.Contains(mods, "c") || strings.Contains(mods, "i"),
		DotAll:     strings.Contains(mods, "s"),
		Asymmetric: strings.Contains(mods, "d"),
	}

	matcher, err := unisearch.Compile(pattern, opts)
	if err != nil {
		return nil, &ParseError{
			Kind:    KindRegex,
			Message: fmt.Sprintf("The regular expression /%s/ is invalid.", pattern),
			Pos:     -1,
			Err:     err,
		}
	}

	return &Regex{Pattern: pattern, Mods: mods, matcher: matcher}, nil
}

// MatchString searches for the pattern in s
func (r *Regex) MatchString(s string) bool {
	return r.matcher.MatchString(s)
}

func (r *Regex) String() string {
	return fmt.Sprintf("<Regex pattern=%s mods=%s>", r.Pattern, r.Mods)
}

// MatchString is true if any value matches
func (u *ValueUnion) MatchString(s string) bool {
	for _, v := range u.Values {
		if v.MatchString(s) {
			return true
		}
	}
	return false
}

func (u *ValueUnion) String() string {
	return fmt.Sprintf("<Union %s>", joinValues(u.Values))
}

// MatchString is true if all values match
func (i *ValueInter) MatchString(s string) bool {
	for _, v := range i.Values {
		if !v.MatchString(s) {
			return false
		}
	}
	return true
}

func (i *ValueInter) String() string {
	return fmt.Sprintf("<Inter %s>", joinValues(i.Values))
}

// MatchString inverts the value
func (n *ValueNeg) MatchString(s string) bool {
	return !n.Value.MatchString(s)
}

func (n *ValueNeg) String() string {
	return fmt.Sprintf("<Neg %s>", n.Value)
}

// NegateValue negates value, double negation cancels out
func NegateValue(v Value) Value {
	if n, ok := v.(*ValueNeg); ok {
		return n.Value
	}
	return &ValueNeg{Value: v}
}

func joinValues(values []Value) string {
	parts := make([]string, len(values))
	for i := range values {
		parts[i] = values[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

const regexSpecials = "/.^$*+-?{,\\[]|()<>#=!:"

// QuoteRegex escapes characters having special meaning either in
// regular expressions or in the query language
func QuoteRegex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(regexSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
