package cmd

import (
	"fmt"

	"github.com/smira/commander"
)

func qlQueryValidate(cmd *commander.Command, args []string) error {
	if len(args) == 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	quiet := context.Flags().Lookup("quiet").Value.Get().(bool)

	invalid := 0

	for _, s := range args {
		q, err := parseQuery(s)
		if err != nil {
			return err
		}

		if !q.IsParsable() {
			invalid++
		}

		if quiet {
			continue
		}

		fmt.Fprintf(stdout, "%s: %s\n", q.Type(), s)
		if !q.IsParsable() {
			fmt.Fprintf(stdout, "  %s\n", explainError(s))
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d queries are invalid", invalid, len(args))
	}

	return nil
}

func makeCmdQueryValidate() *commander.Command {
	cmd := &commander.Command{
		Run:       qlQueryValidate,
		UsageLine: "validate <query> ...",
		Short:     "check whether queries are valid",
		Long: `
Command validate classifies each query as VALID (follows query grammar),
TEXT (free text search) or INVALID. For invalid queries position of the
error is displayed. Command fails if any of the queries is invalid.

Example:

  $ qlquery query validate 'artist = piman' '#(length > 3 minutes)'
`,
	}

	addStarFlag(cmd)
	cmd.Flag.Bool("quiet", false, "don't print anything, only set exit code")

	return cmd
}
