package cmd

import (
	"fmt"

	"github.com/qlquery/qlquery/qlquery"
	"github.com/smira/commander"
)

func qlVersion(_ *commander.Command, _ []string) error {
	fmt.Fprintf(stdout, "qlquery version: %s\n", qlquery.Version)
	return nil
}

func makeCmdVersion() *commander.Command {
	return &commander.Command{
		Run:       qlVersion,
		UsageLine: "version",
		Short:     "display version",
		Long: `
Shows qlquery version.

ex:
  $ qlquery version
`,
	}
}
