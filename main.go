package main

import (
	"os"

	"github.com/qlquery/qlquery/cmd"
	"github.com/qlquery/qlquery/qlquery"
)

// Version variable, filled in at link time
var Version string

func main() {
	if Version == "" {
		Version = "unknown"
	}

	qlquery.Version = Version

	os.Exit(cmd.Run(cmd.RootCommand(), os.Args[1:], true))
}
