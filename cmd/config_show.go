package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/qlquery/qlquery/utils"
	"github.com/smira/commander"
	"gopkg.in/yaml.v3"
)

func qlConfigShow(cmd *commander.Command, args []string) error {
	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	showYaml := context.Flags().Lookup("yaml").Value.Get().(bool)

	config := context.Config()

	if output := context.Flags().Lookup("output").Value.String(); output != "" {
		var err error
		if showYaml {
			err = utils.SaveConfigYAML(output, config)
		} else {
			err = utils.SaveConfig(output, config)
		}
		if err != nil {
			return fmt.Errorf("unable to save config: %s", err)
		}

		fmt.Fprintf(stdout, "Config saved to %s\n", output)
		return nil
	}

	if showYaml {
		yamlData, err := yaml.Marshal(&config)
		if err != nil {
			return fmt.Errorf("error marshaling to YAML: %s", err)
		}
		fmt.Fprint(stdout, string(yamlData))
	} else {
		prettyJSON, err := json.MarshalIndent(config, "", "    ")
		if err != nil {
			return fmt.Errorf("error marshaling to JSON: %s", err)
		}
		fmt.Fprintln(stdout, string(prettyJSON))
	}

	return nil
}

func makeCmdConfigShow() *commander.Command {
	cmd := &commander.Command{
		Run:       qlConfigShow,
		UsageLine: "show",
		Short:     "show current qlquery's config",
		Long: `
Command show displays the current qlquery configuration, including
saved searches available to @(saved: name) queries. With -output
configuration is written to the file instead, which could be used
as a starting point for the new config.

Example:

  $ qlquery config show -yaml

`,
	}

	cmd.Flag.Bool("yaml", false, "show yaml config")
	cmd.Flag.String("output", "", "save config to the file instead of printing it")

	return cmd
}
