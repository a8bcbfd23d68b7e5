// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_radio.go — brightness and thermodynamic temperature, beam area.
//
// Both temperature scales are S_ν / (2 k ν²/c²) in the Rayleigh–Jeans limit;
// the thermodynamic one additionally divides by the Planck correction
//
//	f(ν) = x² eˣ / (eˣ − 1)²,  x = hν / (k T_cmb).

package factory

import (
	"math"

	"github.com/katalvlaran/lvunits/constants"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const (
	nameBrightnessTemperature    = "brightness_temperature"
	nameBeamAngularArea          = "beam_angular_area"
	nameThermodynamicTemperature = "thermodynamic_temperature"
)

// rayleighJeans returns 2 k ν²/c² expressed in Jy sr⁻¹ K⁻¹ for ν in Hz.
func rayleighJeans(nu float64) float64 {
	const c2 = constants.SpeedOfLight * constants.SpeedOfLight

	return 2 * constants.Boltzmann * nu * nu / c2 / constants.JanskySI
}

// jyKelvin converts Jy per beam (beam in sr) to K with jyPerK Jy sr⁻¹ K⁻¹.
type jyKelvin struct {
	jyPerK float64
	beam   float64
}

func (j jyKelvin) toKelvin(x float64) float64 { return x / j.beam / j.jyPerK }
func (j jyKelvin) toJansky(x float64) float64 { return x * j.beam * j.jyPerK }

// BrightnessTemperature bridges Jy/sr and K at the given spectral position.
// With WithBeamArea it bridges Jy and Jy/beam to K for that beam instead.
func BrightnessTemperature(frequency units.Quantity, opts ...Option) (equivalency.Equivalency, error) {
	cfg, err := newConfig(nameBrightnessTemperature, optBeamArea, opts)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	nu, err := spectralIn(nameBrightnessTemperature, "frequency", frequency, units.Hertz)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	kw := map[string]any{"frequency": frequency}
	conv := jyKelvin{jyPerK: rayleighJeans(nu), beam: 1}

	if !cfg.has(optBeamArea) {
		return equivalency.New(nameBrightnessTemperature, kw,
			equivalency.NewPair(units.Jansky.Div(units.Steradian), units.Kelvin, conv.toKelvin, conv.toJansky),
		), nil
	}

	if conv.beam, err = steradians(nameBrightnessTemperature, "beam_area", cfg.beamArea); err != nil {
		return equivalency.Equivalency{}, err
	}
	kw["beam_area"] = cfg.beamArea

	return equivalency.New(nameBrightnessTemperature, kw,
		equivalency.NewPair(units.Jansky, units.Kelvin, conv.toKelvin, conv.toJansky),
		equivalency.NewPair(units.Jansky.Div(units.Beam), units.Kelvin, conv.toKelvin, conv.toJansky),
	), nil
}

// BrightnessTemperatureLegacy accepts the historical (beam area, frequency)
// argument order.
//
// Deprecated: use BrightnessTemperature(frequency, WithBeamArea(beamArea)).
func BrightnessTemperatureLegacy(beamArea, frequency units.Quantity) (equivalency.Equivalency, error) {
	if !beamArea.Unit.IsEquivalent(units.Steradian) {
		return equivalency.Equivalency{}, invalid(nameBrightnessTemperature, "beam_area",
			"%s is not a solid angle; the legacy order is (beam_area, frequency)", beamArea)
	}

	return BrightnessTemperature(frequency, WithBeamArea(beamArea))
}

// BeamAngularArea bridges the beam unit with an explicit solid angle, plus
// the derived beam⁻¹ and Jy/beam forms.
func BeamAngularArea(area units.Quantity) (equivalency.Equivalency, error) {
	if _, err := steradians(nameBeamAngularArea, "beam_area", area); err != nil {
		return equivalency.Equivalency{}, err
	}
	a := area.AsUnit()

	return equivalency.New(nameBeamAngularArea, map[string]any{"beam_area": area},
		equivalency.Bridge(units.Beam, a),
		equivalency.Bridge(units.Beam.Inverse(), a.Inverse()),
		equivalency.Bridge(units.Jansky.Div(units.Beam), units.Jansky.Div(a)),
	), nil
}

// planckCorrection is x² eˣ / expm1(x)² for x = hν/(kT).
func planckCorrection(nu, tcmb float64) float64 {
	x := constants.Planck * nu / (constants.Boltzmann * tcmb)
	em1 := math.Expm1(x)

	return x * x * math.Exp(x) / (em1 * em1)
}

// ThermodynamicTemperature bridges Jy/sr and CMB thermodynamic temperature K
// at the given spectral position. T_cmb comes from WithTcmb, from
// WithCosmology, or from DefaultCosmology; the two options are exclusive.
func ThermodynamicTemperature(frequency units.Quantity, opts ...Option) (equivalency.Equivalency, error) {
	cfg, err := newConfig(nameThermodynamicTemperature, optTcmb|optCosmology, opts)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	if err = cfg.exclusive(nameThermodynamicTemperature, optTcmb, optCosmology); err != nil {
		return equivalency.Equivalency{}, err
	}
	nu, err := spectralIn(nameThermodynamicTemperature, "frequency", frequency, units.Hertz)
	if err != nil {
		return equivalency.Equivalency{}, err
	}

	tq := cfg.cosmology.Tcmb0
	if cfg.has(optTcmb) {
		tq = cfg.tcmb
	}
	t, err := tq.In(units.Kelvin)
	if err != nil || !positive(t) {
		return equivalency.Equivalency{}, invalid(nameThermodynamicTemperature, "T_cmb", "%s is not a positive temperature in K", tq)
	}

	conv := jyKelvin{jyPerK: planckCorrection(nu, t) * rayleighJeans(nu), beam: 1}

	return equivalency.New(nameThermodynamicTemperature, map[string]any{"frequency": frequency, "T_cmb": tq},
		equivalency.NewPair(units.Jansky.Div(units.Steradian), units.Kelvin, conv.toKelvin, conv.toJansky),
	), nil
}
