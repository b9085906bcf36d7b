package cmd

import (
	ctx "github.com/qlquery/qlquery/context"
	"github.com/smira/flag"
)

var context *ctx.QLContext

// Fatal aborts command with error, recovered in Run
var Fatal = ctx.Fatal

// ShutdownContext shuts context down
func ShutdownContext() {
	context.Shutdown()
}

// CleanupContext does partial shutdown of context
func CleanupContext() {
	context.Cleanup()
}

// InitContext initializes context with default settings
func InitContext(flags *flag.FlagSet) error {
	var err error

	if context != nil {
		panic("context already initialized")
	}

	context, err = ctx.NewContext(flags)

	return err
}

// GetContext gives access to the context
func GetContext() *ctx.QLContext {
	return context
}
