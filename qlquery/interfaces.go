// Package qlquery provides common infrastructure shared by the query engine,
// command line tool and HTTP API
package qlquery

import (
	"context"
	"io"
)

// Progress is a progress displaying entity, it allows to show
// loading and filtering progress mixed with regular output
type Progress interface {
	// Writer interface to support progress bar ticking
	io.Writer
	// Start makes progress start its work
	Start()
	// Shutdown shuts down progress display
	Shutdown()
	// Flush returns when all queued messages are sent
	Flush()
	// InitBar starts progressbar for count items
	InitBar(count int64, isBytes bool)
	// ShutdownBar stops progress bar and hides it
	ShutdownBar()
	// AddBar increments progress for progress bar
	AddBar(count int)
	// SetBar sets current position for progress bar
	SetBar(count int)
	// Printf does printf but in safe manner: not overwriting progress bar
	Printf(msg string, a ...interface{})
	// PrintfStdErr does printf but in safe manner to stderr
	PrintfStdErr(msg string, a ...interface{})
	// ColoredPrintf does printf in colored way + newline
	ColoredPrintf(msg string, a ...interface{})
}

// Downloader fetches remote record dumps to local files
type Downloader interface {
	// Download starts new download, blocking until it is finished
	Download(ctx context.Context, url string, destination string) error
	// GetProgress returns Progress object
	GetProgress() Progress
}
