// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	c := newContext(out, errOut)

	cmd := &cobra.Command{
		Use:   "lvunits",
		Short: "Convert values between units through named equivalencies",
		Long: `lvunits converts a value from one unit to another. Units of the same
dimension convert by scaling; anything else needs an equivalency such as
spectral or temperature, given per call with --equiv or enabled for every
call through the "equivalencies" key of lvunits.yaml (or
LVUNITS_EQUIVALENCIES).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fs := cmd.PersistentFlags()
	addFlags(fs)
	if err := c.vip.BindPFlags(fs); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		newConvertCommand(c),
		newListCommand(c),
		newEquivalentCommand(c),
	)

	return cmd
}

// addFlags declares every configuration key as a flag.
func addFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (default ./lvunits.yaml if present)")
	fs.String(keyLogLevel, "warning", "log level: trace, debug, info, warning, error")
	fs.String(keyLogFormat, "text", "log format: text or json")
	fs.StringSlice(keyEquivalencies, nil, "equivalencies enabled for every conversion")
	fs.String(keyRest, "", `rest frequency, wavelength or energy for doppler_* (e.g. "115.2712 GHz")`)
	fs.String(keyWav, "", "wavelength or frequency for spectral_density")
	fs.String(keyFrequency, "", "observing frequency for brightness/thermodynamic temperature")
	fs.String(keyBeamArea, "", "beam solid angle (e.g. \"1e-8 sr\")")
	fs.String(keyPixelScale, "", `pixel scale (e.g. "100 pix/inch")`)
	fs.String(keyPlateScale, "", `plate scale (e.g. "1 arcsec/mm")`)
	fs.String(keyH0, "", "Hubble constant for with_H0 (km/s/Mpc)")
	fs.String(keyTcmb, "", "CMB temperature for thermodynamic_temperature")
	fs.String(keyCosmology, "", "named cosmology: Planck15 or Planck18")
}
