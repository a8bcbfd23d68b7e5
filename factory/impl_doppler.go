// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_doppler.go — radio, optical and relativistic velocity conventions.
//
// Each convention yields three pairs against km/s: frequency (Hz),
// wavelength (Å) and energy (eV). The rest value may be given in any
// spectral unit; it is normalised once into all three.
//
// Conventions (f₀ rest frequency, λ₀ rest wavelength, V velocity):
//
//	radio         V = c (f₀ − f)/f₀              λ = λ₀ c/(c − V)
//	optical       V = c (f₀ − f)/f               λ = λ₀ (1 + V/c)
//	relativistic  V = c (f₀² − f²)/(f₀² + f²)    λ = λ₀ √((1 + V/c)/(1 − V/c))

package factory

import (
	"math"

	"github.com/katalvlaran/lvunits/constants"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const (
	nameDopplerRadio        = "doppler_radio"
	nameDopplerOptical      = "doppler_optical"
	nameDopplerRelativistic = "doppler_relativistic"
)

const ckms = constants.SpeedOfLightKMS

// KilometerPerSecond is the velocity unit all Doppler pairs target.
var KilometerPerSecond = units.Kilometer.Div(units.Second)

// convention maps a spectral coordinate to velocity and back. "spec" covers
// frequency and energy (both proportional to 1/λ), "wav" covers wavelength.
type convention interface {
	specToVel(x, rest float64) float64
	velToSpec(v, rest float64) float64
	wavToVel(x, rest float64) float64
	velToWav(v, rest float64) float64
}

type radio struct{}

func (radio) specToVel(x, r float64) float64 { return (r - x) / r * ckms }
func (radio) velToSpec(v, r float64) float64 { return r * (1 - v/ckms) }
func (radio) wavToVel(x, r float64) float64  { return (x - r) / x * ckms }
func (radio) velToWav(v, r float64) float64  { return r * ckms / (ckms - v) }

type optical struct{}

func (optical) specToVel(x, r float64) float64 { return ckms * (r - x) / x }
func (optical) velToSpec(v, r float64) float64 { return r / (1 + v/ckms) }
func (optical) wavToVel(x, r float64) float64  { return ckms * (x/r - 1) }
func (optical) velToWav(v, r float64) float64  { return r * (1 + v/ckms) }

type relativistic struct{}

func (relativistic) specToVel(x, r float64) float64 {
	return (r*r - x*x) / (r*r + x*x) * ckms
}

func (relativistic) velToSpec(v, r float64) float64 {
	b := v / ckms

	return r * math.Sqrt((1-b)/(1+b))
}

func (relativistic) wavToVel(x, r float64) float64 {
	return (x*x - r*r) / (r*r + x*x) * ckms
}

func (relativistic) velToWav(v, r float64) float64 {
	b := v / ckms

	return r * math.Sqrt((1+b)/(1-b))
}

// dopplerAxis binds a convention to one rest value on one spectral axis.
type dopplerAxis struct {
	conv convention
	rest float64
	wave bool
}

func (a dopplerAxis) toVelocity(x float64) float64 {
	if a.wave {
		return a.conv.wavToVel(x, a.rest)
	}

	return a.conv.specToVel(x, a.rest)
}

func (a dopplerAxis) fromVelocity(v float64) float64 {
	if a.wave {
		return a.conv.velToWav(v, a.rest)
	}

	return a.conv.velToSpec(v, a.rest)
}

// DopplerRadio uses the radio convention; rest is any spectral quantity.
func DopplerRadio(rest units.Quantity) (equivalency.Equivalency, error) {
	return doppler(nameDopplerRadio, radio{}, rest)
}

// DopplerOptical uses the optical convention; rest is any spectral quantity.
func DopplerOptical(rest units.Quantity) (equivalency.Equivalency, error) {
	return doppler(nameDopplerOptical, optical{}, rest)
}

// DopplerRelativistic uses the full relativistic convention; rest is any
// spectral quantity.
func DopplerRelativistic(rest units.Quantity) (equivalency.Equivalency, error) {
	return doppler(nameDopplerRelativistic, relativistic{}, rest)
}

func doppler(name string, conv convention, rest units.Quantity) (equivalency.Equivalency, error) {
	hz, err := spectralIn(name, "rest", rest, units.Hertz)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	aa, err := spectralIn(name, "rest", rest, units.Angstrom)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	ev, err := spectralIn(name, "rest", rest, units.ElectronVolt)
	if err != nil {
		return equivalency.Equivalency{}, err
	}

	freq := dopplerAxis{conv: conv, rest: hz}
	wav := dopplerAxis{conv: conv, rest: aa, wave: true}
	en := dopplerAxis{conv: conv, rest: ev}

	return equivalency.New(name, map[string]any{"rest": rest},
		equivalency.NewPair(units.Hertz, KilometerPerSecond, freq.toVelocity, freq.fromVelocity),
		equivalency.NewPair(units.Angstrom, KilometerPerSecond, wav.toVelocity, wav.fromVelocity),
		equivalency.NewPair(units.ElectronVolt, KilometerPerSecond, en.toVelocity, en.fromVelocity),
	), nil
}
