package match

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies parse failures
type ErrorKind int

// Kinds of parse errors
const (
	KindSyntax ErrorKind = iota
	KindRegex
	KindNumeric
	KindPlugin
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegex:
		return "regex"
	case KindNumeric:
		return "numeric"
	case KindPlugin:
		return "plugin"
	}
	return "syntax"
}

// ParseError is returned when query string doesn't follow the grammar,
// or some part of it (regular expression, unit, extension) can't be compiled
type ParseError struct {
	Kind    ErrorKind
	Message string
	// Pos is index in query string, -1 when unknown
	Pos int
	Err error
}

// NewParseError creates syntax error at position pos
func NewParseError(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: KindSyntax, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap returns underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks whether err is (or wraps) *ParseError
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}

// PluginError is returned by plugins which can't parse extension body
type PluginError struct {
	Plugin  string
	Message string
}

// NewPluginError builds plugin error
func NewPluginError(plugin, format string, args ...interface{}) *PluginError {
	return &PluginError{Plugin: plugin, Message: fmt.Sprintf(format, args...)}
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("%s: %s", e.Plugin, e.Message)
}
