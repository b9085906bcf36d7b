package cmd

import (
	"fmt"
	"strings"

	"github.com/qlquery/qlquery/match"
	"github.com/qlquery/qlquery/unisearch"
	"github.com/smira/commander"
)

func qlQueryExplain(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	q, err := parseQuery(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Query: %s\n", args[0])
	fmt.Fprintf(stdout, "Type: %s\n", q.Type())
	fmt.Fprintf(stdout, "Search tags: %s\n", strings.Join(q.Star(), ", "))
	if q.Source() != args[0] {
		fmt.Fprintf(stdout, "Rewritten: %s\n", q.Source())
	}
	if q.MatchesAll() {
		fmt.Fprintf(stdout, "Matches: everything\n")
	}
	fmt.Fprintf(stdout, "Matcher: %s\n", q.Matcher())

	for _, re := range match.Regexes(q.Matcher()) {
		if strings.Contains(re.Mods, "d") {
			fmt.Fprintf(stdout, "Diacritics: /%s/ -> %s\n", re.Pattern, unisearch.Describe(re.Pattern))
		}
	}

	if !q.IsParsable() {
		fmt.Fprintf(stdout, "Error: %s\n", explainError(args[0]))
	}

	return nil
}

func makeCmdQueryExplain() *commander.Command {
	cmd := &commander.Command{
		Run:       qlQueryExplain,
		UsageLine: "explain <query>",
		Short:     "show how query is parsed",
		Long: `
Command explain displays query type, tags used for free text search
and the tree of matchers query was compiled into. Regular expressions
with "d" modifier are shown expanded to match accented letters.

Example:

  $ qlquery query explain '&(artist = piman, !title = /quux/)'
`,
	}

	addStarFlag(cmd)

	return cmd
}
