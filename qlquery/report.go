package qlquery

import (
	"fmt"
)

// ResultReporter is abstraction for result reporting from record loading and filtering
type ResultReporter interface {
	// Warning is non-fatal error message
	Warning(msg string, a ...interface{})
	// Skipped is signal that some input has been ignored
	Skipped(msg string, a ...interface{})
	// Matched is signal that a record passed the query
	Matched(msg string, a ...interface{})
}

// ConsoleResultReporter is implementation of ResultReporter that prints in colors to console
type ConsoleResultReporter struct {
	Progress Progress
}

// Check interface
var (
	_ ResultReporter = &ConsoleResultReporter{}
)

// Warning is non-fatal error message (yellow)
func (c *ConsoleResultReporter) Warning(msg string, a ...interface{}) {
	c.Progress.ColoredPrintf("@y[!]@| @!"+msg+"@|", a...)
}

// Skipped is signal that some input has been ignored (red)
func (c *ConsoleResultReporter) Skipped(msg string, a ...interface{}) {
	c.Progress.ColoredPrintf("@r[-]@| "+msg, a...)
}

// Matched is signal that a record passed the query (green)
func (c *ConsoleResultReporter) Matched(msg string, a ...interface{}) {
	c.Progress.ColoredPrintf("@g[+]@| "+msg, a...)
}

// RecordingResultReporter is implementation of ResultReporter that collects all messages
type RecordingResultReporter struct {
	Warnings []string `json:"warnings"`
	Skips    []string `json:"skipped"`
	Matches  []string `json:"matched"`
}

// Check interface
var (
	_ ResultReporter = &RecordingResultReporter{}
)

// Warning is non-fatal error message
func (r *RecordingResultReporter) Warning(msg string, a ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(msg, a...))
}

// Skipped is signal that some input has been ignored
func (r *RecordingResultReporter) Skipped(msg string, a ...interface{}) {
	r.Skips = append(r.Skips, fmt.Sprintf(msg, a...))
}

// Matched is signal that a record passed the query
func (r *RecordingResultReporter) Matched(msg string, a ...interface{}) {
	r.Matches = append(r.Matches, fmt.Sprintf(msg, a...))
}
