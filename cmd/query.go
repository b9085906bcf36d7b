package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/qlquery/qlquery/match"
	"github.com/qlquery/qlquery/query"
	"github.com/smira/commander"
)

func makeCmdQuery() *commander.Command {
	return &commander.Command{
		UsageLine: "query",
		Short:     "check queries and filter records",
		Subcommands: []*commander.Command{
			makeCmdQueryValidate(),
			makeCmdQueryExplain(),
			makeCmdQueryFilter(),
			makeCmdQueryGraph(),
		},
	}
}

func addStarFlag(cmd *commander.Command) {
	cmd.Flag.String("star", "", "comma-separated list of tags searched by free text (default from config)")
}

// parseQuery parses query with context options through the cache
func parseQuery(s string) (*query.Query, error) {
	cache, err := context.QueryCache()
	if err != nil {
		return nil, err
	}

	return cache.Get(s), nil
}

// explainError renders parse error of the query with marker at failure position
func explainError(s string) string {
	_, err := query.Parse(s, context.QueryOptions()...)
	if err == nil {
		return ""
	}

	var perr *match.ParseError
	if !errors.As(err, &perr) || perr.Pos < 0 {
		return err.Error()
	}

	return fmt.Sprintf("%s error: %s\n  %s\n  %s^", perr.Kind, err, s, strings.Repeat(" ", perr.Pos))
}
