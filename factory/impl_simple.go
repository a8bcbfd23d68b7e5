// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_simple.go — parameterless equivalencies.

package factory

import (
	"math"

	"github.com/katalvlaran/lvunits/constants"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const (
	nameParallax            = "parallax"
	nameMassEnergy          = "mass_energy"
	nameMolarMassAMU        = "molar_mass_amu"
	nameLogarithmic         = "logarithmic"
	nameDimensionlessAngles = "dimensionless_angles"
)

// parallaxDistance is 1/x; a negative result has no physical meaning and is
// reported as NaN.
func parallaxDistance(x float64) float64 {
	d := 1 / x
	if d < 0 {
		return math.NaN()
	}

	return d
}

// Parallax bridges parallax angle and distance (1 arcsec ↔ 1 pc). Negative
// angles convert to NaN without an error.
func Parallax() equivalency.Equivalency {
	return equivalency.New(nameParallax, nil,
		equivalency.Involution(units.Arcsecond, units.Parsec, parallaxDistance,
			equivalency.WithUndefinedOutOfDomain()),
	)
}

// MassEnergy is E = mc², also per area, per volume and per time.
func MassEnergy() equivalency.Equivalency {
	const c2 = constants.SpeedOfLight * constants.SpeedOfLight
	toE := func(x float64) float64 { return x * c2 }
	toM := func(x float64) float64 { return x / c2 }
	kg, j, m, s := units.Kilogram, units.Joule, units.Meter, units.Second

	return equivalency.New(nameMassEnergy, nil,
		equivalency.NewPair(kg, j, toE, toM),
		equivalency.NewPair(kg.Div(m.Pow(2)), j.Div(m.Pow(2)), toE, toM),
		equivalency.NewPair(kg.Div(m.Pow(3)), j.Div(m.Pow(3)), toE, toM),
		equivalency.NewPair(kg.Div(s), j.Div(s), toE, toM),
	)
}

// MolarMassAMU identifies g/mol with the atomic mass unit.
func MolarMassAMU() equivalency.Equivalency {
	return equivalency.New(nameMolarMassAMU, nil,
		equivalency.Bridge(units.Gram.Div(units.Mole), units.AtomicMassUnit),
	)
}

// Logarithmic converts dimensionless fractions to dex and back. Non-positive
// fractions fail with a NumericDomainError.
func Logarithmic() equivalency.Equivalency {
	return equivalency.New(nameLogarithmic, nil,
		equivalency.NewPair(units.Dimensionless, units.Dex,
			math.Log10,
			func(x float64) float64 { return math.Pow(10, x) }),
	)
}

// DimensionlessAngles lets radians vanish at any power, anywhere in a unit.
func DimensionlessAngles() equivalency.Equivalency {
	return equivalency.New(nameDimensionlessAngles, nil, equivalency.Collapse(units.Radian))
}
