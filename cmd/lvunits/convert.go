// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/metrics"
	"github.com/katalvlaran/lvunits/resolver"
	"github.com/katalvlaran/lvunits/units"
)

type convertCmd struct {
	*cmdContext
	equiv   []string
	metrics bool
}

func newConvertCommand(c *cmdContext) *cobra.Command {
	convert := &convertCmd{cmdContext: c}
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert VALUE from unit FROM to unit TO",
		Example: `
  lvunits convert 1.5 km m
  lvunits convert 500 nm eV --equiv spectral
  lvunits convert 0 deg_C deg_F -e temperature
  lvunits convert 115.2 GHz km/s -e doppler_radio --rest "115.2712 GHz"
  lvunits convert -- -40 deg_F K -e temperature
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert.run(args)
		},
	}
	cmd.Flags().StringSliceVarP(&convert.equiv, "equiv", "e", nil, "equivalency to try before enabled ones (repeatable)")
	cmd.Flags().BoolVar(&convert.metrics, "metrics", false, "print conversion counters in Prometheus text format")

	return cmd
}

func (c *convertCmd) run(args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("VALUE %q is not a number", args[0])
	}
	from, err := units.Parse(args[1])
	if err != nil {
		return fmt.Errorf("FROM: %w", err)
	}
	to, err := units.Parse(args[2])
	if err != nil {
		return fmt.Errorf("TO: %w", err)
	}

	var (
		reg *prometheus.Registry
		obs resolver.Observer
	)
	if c.metrics {
		reg = prometheus.NewRegistry()
		col, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		obs = col
	}

	s, explicit, err := c.session(c.equiv, obs)
	if err != nil {
		return err
	}
	out, convErr := s.Convert(v, from, to, explicit...)
	if convErr == nil {
		fmt.Fprintf(c.out, "%s %s\n", strconv.FormatFloat(out, 'g', -1, 64), to)
	}
	if reg != nil {
		if err := metrics.WriteText(c.out, reg); err != nil {
			return err
		}
	}

	return convErr
}
