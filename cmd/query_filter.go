package cmd

import (
	"fmt"
	"os"

	"github.com/qlquery/qlquery/http"
	"github.com/qlquery/qlquery/library"
	"github.com/qlquery/qlquery/utils"
	"github.com/smira/commander"
)

func qlQueryFilter(cmd *commander.Command, args []string) error {
	var err error

	if len(args) < 1 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	q, err := parseQuery(args[0])
	if err != nil {
		return err
	}

	if !q.IsParsable() {
		return fmt.Errorf("invalid query: %s", explainError(args[0]))
	}

	var collection *library.Collection

	if locations := args[1:]; len(locations) > 0 {
		for _, location := range locations {
			if http.IsRemote(location) {
				continue
			}
			if err = utils.PathIsReadable(location); err != nil {
				return err
			}
		}

		collection, err = context.LoadCollection(locations)
	} else {
		collection, err = context.Collection()
	}
	if err != nil {
		return err
	}

	var result []*library.Song

	matcher := q.Matcher()

	progress := context.Progress()
	progress.InitBar(int64(collection.Len()), false)

	_ = collection.ForEach(func(song *library.Song) error {
		progress.AddBar(1)
		if matcher.Search(song) {
			result = append(result, song)
		}
		return nil
	})

	progress.ShutdownBar()

	if output := context.Flags().Lookup("output").Value.String(); output != "" {
		if err = library.SaveFile(output, result); err != nil {
			return err
		}

		size := int64(0)
		if info, err := os.Stat(output); err == nil {
			size = info.Size()
		}

		fmt.Fprintf(stdout, "Saved %d of %d records to %s (%s)\n", len(result), collection.Len(), output, utils.HumanBytes(size))
		return nil
	}

	if context.Flags().Lookup("count").Value.Get().(bool) {
		fmt.Fprintf(stdout, "%d\n", len(result))
		return nil
	}

	for _, song := range result {
		fmt.Fprintf(stdout, "%s\n", song)
	}

	return nil
}

func makeCmdQueryFilter() *commander.Command {
	cmd := &commander.Command{
		Run:       qlQueryFilter,
		UsageLine: "filter <query> [<file> | <directory> ...]",
		Short:     "filter records with query",
		Long: `
Command filter loads song records from dump files (or from library paths
in the config if none are given) and prints records matching the query.
Directories are searched for dumps recursively, http(s) and ftp URLs
are downloaded first. Dumps can be JSON, YAML or MessagePack, optionally
compressed with gzip, bzip2, xz, lzma or zstd.

Matched records can be saved to another dump with -output, format and
compression are picked by file extension.

Example:

  $ qlquery query filter '#(playcount > 10)' ~/songs.json.gz
  $ qlquery query filter -output=long.yaml '#(length > 5 minutes)'
  $ qlquery query filter -count 'genre = jazz' https://example.com/songs.json
`,
	}

	addStarFlag(cmd)
	cmd.Flag.Bool("count", false, "only print number of matching records")
	cmd.Flag.String("output", "", "save matching records to dump file")

	return cmd
}
