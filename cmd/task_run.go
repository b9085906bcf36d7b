package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/smira/commander"
)

// stdin is source of interactively entered commands
var stdin io.Reader = os.Stdin

// readCommands parses commands, one per line, until EOF or blank line
func readCommands(r io.Reader, prompt bool) ([]string, error) {
	cmdArgs := []string{}

	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprintf(stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			if prompt {
				break
			}
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}

		parsedArgs, err := shellwords.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("unable to parse %q: %s", text, err)
		}
		if len(parsedArgs) == 0 {
			continue
		}
		parsedArgs[len(parsedArgs)-1] += ","
		cmdArgs = append(cmdArgs, parsedArgs...)
	}

	return cmdArgs, scanner.Err()
}

func qlTaskRun(cmd *commander.Command, args []string) error {
	var err error
	var cmdList [][]string

	if filename := context.Flags().Lookup("filename").Value.Get().(string); filename != "" {
		if finfo, err := os.Stat(filename); os.IsNotExist(err) || finfo.IsDir() {
			return fmt.Errorf("no such file, %s", filename)
		}

		fmt.Fprintf(stdout, "Reading file...\n\n")

		file, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer file.Close()

		cmdArgs, err := readCommands(file, false)
		if err != nil {
			return err
		}

		if len(cmdArgs) == 0 {
			return fmt.Errorf("the file is empty")
		}

		cmdList = formatCommands(cmdArgs)
	} else if len(args) == 0 {
		fmt.Fprintf(stdout, "Please enter one command per line and leave one blank when finished.\n")

		cmdArgs, err := readCommands(stdin, true)
		if err != nil {
			return err
		}

		if len(cmdArgs) == 0 {
			return fmt.Errorf("nothing entered")
		}

		cmdList = formatCommands(cmdArgs)
	} else {
		cmdList = formatCommands(args)
	}

	commandErrored := false

	for i, command := range cmdList {
		if !commandErrored {
			context.Progress().ColoredPrintf("@g%d) [Running]: %s@!", (i + 1), strings.Join(command, " "))
			context.Progress().ColoredPrintf("\n@yBegin command output: ----------------------------@!")
			context.Progress().Flush()

			returnCode := Run(RootCommand(), command, false)
			if returnCode != 0 {
				commandErrored = true
			}
			context.Progress().ColoredPrintf("\n@yEnd command output: ------------------------------@!")
			CleanupContext()
		} else {
			context.Progress().ColoredPrintf("@r%d) [Skipping]: %s@!", (i + 1), strings.Join(command, " "))
		}
	}

	if commandErrored {
		err = fmt.Errorf("at least one command has reported an error")
	}

	return err
}

// formatCommands splits arguments into commands at trailing commas
func formatCommands(args []string) [][]string {
	var cmd []string
	var cmdArray [][]string

	for _, s := range args {
		if trimmed := strings.TrimRight(s, ","); trimmed != s {
			if trimmed != "" {
				cmd = append(cmd, trimmed)
			}
			if len(cmd) > 0 {
				cmdArray = append(cmdArray, cmd)
			}
			cmd = []string{}
		} else {
			cmd = append(cmd, s)
		}
	}

	if len(cmd) > 0 {
		cmdArray = append(cmdArray, cmd)
	}

	return cmdArray
}

func makeCmdTaskRun() *commander.Command {
	cmd := &commander.Command{
		Run:       qlTaskRun,
		UsageLine: "run (-filename=<filename> | <command1>, <command2>, ...)",
		Short:     "run qlquery tasks",
		Long: `
Command helps organise multiple qlquery commands in one single task, sharing
configuration and query cache. Commands are run one by one, after first
failure the rest are skipped. Lines starting with # are ignored.

Example:

  $ qlquery task run
  > query validate "artist = piman"
  > query filter "#(playcount > 10)" songs.json
  >

`,
	}

	cmd.Flag.String("filename", "", "specifies the filename that contains the commands to run")
	return cmd
}
