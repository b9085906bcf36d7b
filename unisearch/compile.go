// Package unisearch implements diacritic-insensitive regular expression
// matching: patterns are rewritten so ASCII letters match their accented
// variants, text and patterns are NFC normalized.
package unisearch

import (
	"regexp"
	"regexp/syntax"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"
)

// Options control compilation of a pattern
type Options struct {
	// IgnoreCase makes matching case-insensitive
	IgnoreCase bool
	// DotAll makes "." match newlines
	DotAll bool
	// Asymmetric makes letters match similar looking unicode letters
	Asymmetric bool
}

// Matcher is a compiled pattern, safe for concurrent use
type Matcher struct {
	source string
	re     *regexp.Regexp
}

// Compile compiles pattern, which is always matched in multi-line mode
// (^ and $ match at line boundaries).
//
// If Asymmetric is requested but the pattern can't be rewritten, it is
// compiled as is.
func Compile(pattern string, opts Options) (*Matcher, error) {
	pattern = norm.NFC.String(pattern)

	flags := syntax.Perl &^ syntax.OneLine
	prefix := "(?m"
	if opts.IgnoreCase {
		flags |= syntax.FoldCase
		prefix += "i"
	}
	if opts.DotAll {
		flags |= syntax.DotNL
		prefix += "s"
	}
	prefix += ")"

	source := pattern
	if opts.Asymmetric {
		expanded, err := Expand(pattern, flags)
		switch {
		case err == nil:
			source = expanded
		case errors.Is(err, ErrUnsupported):
			log.Debug().Str("pattern", pattern).Err(err).Msg("regex not supported, skipping diacritic expansion")
		default:
			return nil, errors.Wrapf(err, "invalid regular expression %q", pattern)
		}
	}

	re, err := regexp.Compile(prefix + source)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid regular expression %q", pattern)
	}

	return &Matcher{source: pattern, re: re}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(pattern string, opts Options) *Matcher {
	m, err := Compile(pattern, opts)
	if err != nil {
		panic(err)
	}
	return m
}

// MatchString reports whether text contains a match
func (m *Matcher) MatchString(text string) bool {
	if !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	return m.re.MatchString(text)
}

// Pattern returns the pattern as passed to Compile (NFC normalized)
func (m *Matcher) Pattern() string {
	return m.source
}

// String returns the compiled regular expression
func (m *Matcher) String() string {
	return m.re.String()
}
