package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/qlquery/qlquery/graph"
	"github.com/smira/commander"
)

func qlQueryGraph(cmd *commander.Command, args []string) error {
	var err error

	if len(args) != 1 {
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

	layout := context.Flags().Lookup("layout").Value.String()

	g, err := graph.BuildGraph(q.Matcher(), layout)
	if err != nil {
		return err
	}

	format := context.Flags().Lookup("format").Value.String()
	output := context.Flags().Lookup("output").Value.String()

	if filepath.Ext(output) != "" {
		format = filepath.Ext(output)[1:]
	}

	// no rendering needed
	if format == "dot" || format == "gv" {
		if output == "" {
			_, err = fmt.Fprint(stdout, g.String())
			return err
		}
		return os.WriteFile(output, []byte(g.String()), 0644)
	}

	buf := bytes.NewBufferString(g.String())

	tempfilename := ""
	if output == "" {
		tempfile, err := os.CreateTemp("", "qlquery-graph")
		if err != nil {
			return err
		}
		_ = tempfile.Close()
		_ = os.Remove(tempfile.Name())

		tempfilename = tempfile.Name() + "." + format
	}

	target := output
	if target == "" {
		target = tempfilename
	}

	command := exec.Command("dot", "-T"+format, "-o"+target)
	command.Stderr = os.Stderr

	stdin, err := command.StdinPipe()
	if err != nil {
		return err
	}

	err = command.Start()
	if err != nil {
		return fmt.Errorf("unable to execute dot: %s (is graphviz package installed?)", err)
	}

	_, err = io.Copy(stdin, buf)
	if err != nil {
		return err
	}

	err = stdin.Close()
	if err != nil {
		return err
	}

	err = command.Wait()
	if err != nil {
		return err
	}

	if output != "" {
		fmt.Fprintf(stdout, "Output saved to %s\n", output)
	} else {
		fmt.Fprintf(stdout, "Rendered to %s file: %s, trying to open it...\n", format, tempfilename)

		_ = exec.Command("open", tempfilename).Run()
	}

	return nil
}

func makeCmdQueryGraph() *commander.Command {
	cmd := &commander.Command{
		Run:       qlQueryGraph,
		UsageLine: "graph <query>",
		Short:     "render query as graph",
		Long: `
Command graph displays tree of the compiled query using graphviz package
to render graph as an image. With -format=dot graph source is printed
without rendering.

Example:

  $ qlquery query graph -output=query.svg '|(artist = piman, #(playcount > 10))'
`,
	}

	addStarFlag(cmd)
	cmd.Flag.String("format", "png", "render graph to specified format (png, svg, pdf, dot, etc.)")
	cmd.Flag.String("output", "", "specify output filename, default is to open result in viewer")
	cmd.Flag.String("layout", "horizontal", "create a more 'vertical' or a more 'horizontal' graph layout")

	return cmd
}
