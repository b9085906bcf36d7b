// Package cmd implements console commands
package cmd

import (
	"io"
	"os"

	"github.com/qlquery/qlquery/qlquery"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

// stdout receives command results, progress and errors go through context
var stdout io.Writer = os.Stdout

// RootCommand creates root command in command tree
func RootCommand() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0],
		Short:     "Quod Libet style query language tool",
		Long: `
qlquery parses, validates and runs queries written in the Quod Libet
query language against song records.

Queries can be checked and explained, rendered as graphs and used to
filter record dumps (JSON, YAML or MessagePack, optionally compressed).
The same functionality is available as HTTP API with qlquery serve.`,
		Flag: *flag.NewFlagSet("qlquery", flag.ExitOnError),
		Subcommands: []*commander.Command{
			makeCmdConfig(),
			makeCmdQuery(),
			makeCmdServe(),
			makeCmdTask(),
			makeCmdVersion(),
		},
	}

	cmd.Flag.String("config", "", "location of configuration file (default locations in order: ~/.qlquery.conf, /usr/local/etc/qlquery.conf, /etc/qlquery.conf)")

	if qlquery.EnableDebug {
		cmd.Flag.String("cpuprofile", "", "write cpu profile to file")
		cmd.Flag.String("memprofile", "", "write memory profile to this file")
	}

	return cmd
}
