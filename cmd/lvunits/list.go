// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvunits/factory"
)

type listCmd struct {
	*cmdContext
	output string
}

func newListCommand(c *cmdContext) *cobra.Command {
	list := &listCmd{cmdContext: c}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the equivalency factories and their parameters",
		Long: `List every built-in factory. A parameter ending in "?" is optional.
Output is YAML by default; -o json or -o names are also accepted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list.run()
		},
	}
	cmd.Flags().StringVarP(&list.output, "output", "o", "yaml", "output format: yaml, json or names")

	return cmd
}

func (c *listCmd) run() error {
	entries := factory.Default().Entries()

	switch c.output {
	case "names":
		for _, e := range entries {
			fmt.Fprintln(c.out, e.Name)
		}

		return nil
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown output %q (want yaml, json or names)", c.output)
	}

	b, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	if c.output == "json" {
		if b, err = yaml.YAMLToJSON(b); err != nil {
			return err
		}
		b = append(b, '\n')
	}
	_, err = c.out.Write(b)

	return err
}
