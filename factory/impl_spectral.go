// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_spectral.go — Spectral and SpectralDensity.
//
// Spectral has two wavenumber flavours:
//   • spectroscopic 1/λ   (m⁻¹)
//   • angular       2π/λ  (rad m⁻¹)
//
// SpectralDensity works in CGS per Ångström / per Hz, like most catalogues,
// and needs the wavelength (or any spectral quantity) the densities refer to.

package factory

import (
	"math"

	"github.com/katalvlaran/lvunits/constants"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const (
	nameSpectral        = "spectral"
	nameSpectralDensity = "spectral_density"
)

const twoPi = 2 * math.Pi

// Spectral bridges wavelength, frequency, energy and both wavenumbers.
func Spectral() equivalency.Equivalency {
	const (
		c  = constants.SpeedOfLight
		h  = constants.Planck
		hc = constants.HC
	)
	invM := units.Meter.Inverse()
	invMAng := units.Radian.Div(units.Meter)

	return equivalency.New(nameSpectral, nil,
		equivalency.Involution(units.Meter, units.Hertz, func(x float64) float64 { return c / x }),
		equivalency.Involution(units.Meter, units.Joule, func(x float64) float64 { return hc / x }),
		equivalency.NewPair(units.Hertz, units.Joule,
			func(x float64) float64 { return h * x },
			func(x float64) float64 { return x / h }),
		equivalency.Involution(units.Meter, invM, func(x float64) float64 { return 1 / x }),
		equivalency.NewPair(units.Hertz, invM,
			func(x float64) float64 { return x / c },
			func(x float64) float64 { return c * x }),
		equivalency.NewPair(units.Joule, invM,
			func(x float64) float64 { return x / hc },
			func(x float64) float64 { return hc * x }),
		equivalency.NewPair(invM, invMAng,
			func(x float64) float64 { return x * twoPi },
			func(x float64) float64 { return x / twoPi }),
		equivalency.Involution(units.Meter, invMAng, func(x float64) float64 { return twoPi / x }),
		equivalency.NewPair(units.Hertz, invMAng,
			func(x float64) float64 { return twoPi * x / c },
			func(x float64) float64 { return c * x / twoPi }),
		equivalency.NewPair(units.Joule, invMAng,
			func(x float64) float64 { return x * twoPi / hc },
			func(x float64) float64 { return hc * x / twoPi }),
	)
}

// densityConfig is the reference wavelength (Å) and frequency (Hz).
type densityConfig struct {
	wav  float64
	freq float64
}

const (
	cAps = constants.SpeedOfLightAAPS
	hCGS = constants.PlanckCGS
	hcAA = constants.HCCGS
)

func (d densityConfig) laToNu(x float64) float64 { return x * (d.wav * d.wav / cAps) }
func (d densityConfig) nuToLa(x float64) float64 { return x / (d.wav * d.wav / cAps) }
func (d densityConfig) fnuToNuFnu(x float64) float64 { return x * d.freq }
func (d densityConfig) nuFnuToFnu(x float64) float64 { return x / d.freq }
func (d densityConfig) flaToLaFla(x float64) float64 { return x * d.wav }
func (d densityConfig) laFlaToFla(x float64) float64 { return x / d.wav }
func (d densityConfig) photToEnergy(x float64) float64 { return hcAA * x / d.wav }
func (d densityConfig) energyToPhot(x float64) float64 { return x * d.wav / hcAA }
func (d densityConfig) photLaToFnu(x float64) float64 { return hCGS * x * d.wav }
func (d densityConfig) fnuToPhotLa(x float64) float64 { return x / (d.wav * hCGS) }
func (d densityConfig) photLaToPhotNu(x float64) float64 { return x * d.wav * d.wav / cAps }
func (d densityConfig) photNuToPhotLa(x float64) float64 { return cAps * x / (d.wav * d.wav) }
func (d densityConfig) photNuToFla(x float64) float64 {
	return x * hcAA * cAps / (d.wav * d.wav * d.wav)
}
func (d densityConfig) flaToPhotNu(x float64) float64 {
	return x * d.wav * d.wav * d.wav / (hcAA * cAps)
}

// densityFamily is one set of related density units: per Å, per Hz, and
// integrated, in energy and in photons.
type densityFamily struct {
	la, nu, laLa             units.Unit // erg/Å, erg/Hz, erg (integrated)
	photLa, photNu, photLaLa units.Unit
}

func (d densityConfig) pairs(f densityFamily, integrated bool) []equivalency.Pair {
	out := []equivalency.Pair{
		equivalency.NewPair(f.la, f.nu, d.laToNu, d.nuToLa),
		equivalency.NewPair(f.nu, f.laLa, d.fnuToNuFnu, d.nuFnuToFnu),
		equivalency.NewPair(f.la, f.laLa, d.flaToLaFla, d.laFlaToFla),
		equivalency.NewPair(f.photLa, f.la, d.photToEnergy, d.energyToPhot),
		equivalency.NewPair(f.photLa, f.nu, d.photLaToFnu, d.fnuToPhotLa),
		equivalency.NewPair(f.photLa, f.photNu, d.photLaToPhotNu, d.photNuToPhotLa),
		equivalency.NewPair(f.photNu, f.nu, d.photToEnergy, d.energyToPhot),
		equivalency.NewPair(f.photNu, f.la, d.photNuToFla, d.flaToPhotNu),
	}
	if integrated {
		out = append(out, equivalency.NewPair(f.photLaLa, f.laLa, d.photToEnergy, d.energyToPhot))
	}

	return out
}

// SpectralDensity converts between per-wavelength, per-frequency and photon
// densities at the spectral position wav, for flux, luminosity and both
// surface-brightness flavours.
func SpectralDensity(wav units.Quantity) (equivalency.Equivalency, error) {
	aa, err := spectralIn(nameSpectralDensity, "wav", wav, units.Angstrom)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	hz, err := spectralIn(nameSpectralDensity, "wav", wav, units.Hertz)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	d := densityConfig{wav: aa, freq: hz}

	var (
		erg, ph, s = units.Erg, units.Photon, units.Second
		aaU, hzU   = units.Angstrom, units.Hertz
		cm2        = units.Centimeter.Pow(2)
		sr         = units.Steradian
	)
	flux := densityFamily{
		la:       erg.Div(aaU).Div(cm2).Div(s),
		nu:       erg.Div(hzU).Div(cm2).Div(s),
		laLa:     erg.Div(cm2).Div(s),
		photLa:   ph.Div(cm2.Mul(s).Mul(aaU)),
		photNu:   ph.Div(cm2.Mul(s).Mul(hzU)),
		photLaLa: ph.Div(cm2.Mul(s)),
	}
	lum := densityFamily{
		la:     erg.Div(s).Div(aaU),
		nu:     erg.Div(s).Div(hzU),
		laLa:   erg.Div(s),
		photLa: ph.Div(s.Mul(aaU)),
		photNu: ph.Div(s.Mul(hzU)),
	}
	perSr := func(f densityFamily) densityFamily {
		return densityFamily{
			la: f.la.Div(sr), nu: f.nu.Div(sr), laLa: f.laLa.Div(sr),
			photLa: f.photLa.Div(sr), photNu: f.photNu.Div(sr),
		}
	}

	var pairs []equivalency.Pair
	pairs = append(pairs, d.pairs(flux, true)...)
	pairs = append(pairs, d.pairs(lum, false)...)
	pairs = append(pairs, d.pairs(perSr(flux), false)...)
	pairs = append(pairs, d.pairs(perSr(lum), false)...)

	return equivalency.New(nameSpectralDensity, map[string]any{"wav": wav}, pairs...), nil
}
