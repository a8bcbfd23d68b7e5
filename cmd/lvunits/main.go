// SPDX-License-Identifier: MIT

// Command lvunits converts values between units on the command line, with
// equivalencies chosen per call (--equiv) or enabled through lvunits.yaml or
// the LVUNITS_EQUIVALENCIES environment variable.
//
//	lvunits convert 500 nm GHz --equiv spectral
//	lvunits convert 115.2 GHz km/s --equiv doppler_radio --rest "115.2712 GHz"
//	lvunits list
//	lvunits equivalent Hz --equiv spectral
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		logrus.WithError(err).Fatal("lvunits failed")
	}
}
