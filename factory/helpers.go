// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// helpers.go — parameter normalisation shared by the factories.

package factory

import (
	"math"

	"github.com/katalvlaran/lvunits/resolver"
	"github.com/katalvlaran/lvunits/units"
)

// paramResolver has a private, never-mutated stack; it only ever sees the
// spectral equivalency passed explicitly.
var paramResolver = resolver.New()

// spectralIn expresses a frequency, wavelength, energy or wavenumber in unit to.
func spectralIn(factory, param string, q units.Quantity, to units.Unit) (float64, error) {
	v, err := paramResolver.Convert(q.Value, q.Unit, to, Spectral())
	if err != nil {
		return 0, invalid(factory, param, "%s is not a frequency, wavelength, energy or wavenumber", q)
	}
	if !positive(v) {
		return 0, invalid(factory, param, "%s must be positive and finite", q)
	}

	return v, nil
}

// steradians expresses a solid angle in sr.
func steradians(factory, param string, q units.Quantity) (float64, error) {
	v, err := q.In(units.Steradian)
	if err != nil {
		return 0, invalid(factory, param, "%s is not a solid angle", q)
	}
	if !positive(v) {
		return 0, invalid(factory, param, "%s must be positive and finite", q)
	}

	return v, nil
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
