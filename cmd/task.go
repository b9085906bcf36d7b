package cmd

import (
	"github.com/smira/commander"
)

func makeCmdTask() *commander.Command {
	return &commander.Command{
		UsageLine: "task",
		Short:     "run several qlquery commands at once",
		Subcommands: []*commander.Command{
			makeCmdTaskRun(),
		},
	}
}
