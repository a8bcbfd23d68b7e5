// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// cosmology.go — the two cosmological parameters the factories need.

package factory

import "github.com/katalvlaran/lvunits/units"

// Cosmology carries the Hubble constant and the CMB temperature at z=0.
type Cosmology struct {
	Name  string
	H0    units.Quantity
	Tcmb0 units.Quantity
}

// HubbleUnit is km s⁻¹ Mpc⁻¹.
var HubbleUnit = units.Kilometer.Div(units.Second).Div(units.Megaparsec).Named("km / (s Mpc)")

var (
	// Planck15 is the Planck 2015 results, paper XIII, table 4 (TT,TE,EE+lowP+lensing+ext).
	Planck15 = Cosmology{Name: "Planck15", H0: units.Q(67.74, HubbleUnit), Tcmb0: units.Q(2.7255, units.Kelvin)}

	// Planck18 is the Planck 2018 results, paper VI, table 2 (TT,TE,EE+lowE+lensing+BAO).
	Planck18 = Cosmology{Name: "Planck18", H0: units.Q(67.66, HubbleUnit), Tcmb0: units.Q(2.7255, units.Kelvin)}

	// DefaultCosmology is used when neither a cosmology nor an explicit value is given.
	DefaultCosmology = Planck18
)

// LookupCosmology returns the built-in cosmology called name.
func LookupCosmology(name string) (Cosmology, bool) {
	for _, c := range []Cosmology{Planck15, Planck18} {
		if c.Name == name {
			return c, true
		}
	}

	return Cosmology{}, false
}
