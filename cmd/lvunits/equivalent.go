// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/units"
)

type equivalentCmd struct {
	*cmdContext
	equiv []string
}

func newEquivalentCommand(c *cmdContext) *cobra.Command {
	eq := &equivalentCmd{cmdContext: c}
	cmd := &cobra.Command{
		Use:   "equivalent UNIT",
		Short: "List catalog units UNIT converts to",
		Example: `
  lvunits equivalent Hz
  lvunits equivalent Hz --equiv spectral
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return eq.run(args[0])
		},
	}
	cmd.Flags().StringSliceVarP(&eq.equiv, "equiv", "e", nil, "equivalency to consider (repeatable)")

	return cmd
}

func (c *equivalentCmd) run(expr string) error {
	u, err := units.Parse(expr)
	if err != nil {
		return err
	}
	s, explicit, err := c.session(c.equiv, nil)
	if err != nil {
		return err
	}
	for _, e := range s.EquivalentUnits(u, explicit...) {
		fmt.Fprintln(c.out, e.Name())
	}

	return nil
}
