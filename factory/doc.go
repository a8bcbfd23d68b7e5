// SPDX-License-Identifier: MIT

// Package factory is the library of ready-made equivalencies.
//
// Every factory is a pure configuration producer: it validates its physical
// parameters, folds them into a small immutable config struct, and returns an
// equivalency.Equivalency whose transforms are that struct's methods. Nothing
// here resolves conversions; package resolver does.
//
// 📚 Catalogue
//
//	Spectral                    wavelength ↔ frequency ↔ energy ↔ wavenumber
//	SpectralDensity(wav)        f_ν ↔ f_λ ↔ photon flux, luminosity, surface brightness
//	DopplerRadio(rest)          V = c (f₀ − f)/f₀
//	DopplerOptical(rest)        V = c (f₀ − f)/f
//	DopplerRelativistic(rest)   V = c (f₀² − f²)/(f₀² + f²)
//	Parallax                    arcsec ↔ pc, negative angles → NaN
//	Temperature                 K ↔ °C ↔ °F ↔ °R
//	TemperatureEnergy           K ↔ eV
//	BrightnessTemperature(ν)    Jy/sr ↔ K (Jy, Jy/beam ↔ K with WithBeamArea)
//	BeamAngularArea(area)       beam ↔ solid angle
//	ThermodynamicTemperature(ν) Jy/sr ↔ K_CMB
//	PixelScale(scale)           pix ↔ physical unit
//	PlateScale(scale)           focal-plane length ↔ angle
//	WithH0                      little-h ↔ physical
//	MassEnergy                  kg ↔ J (and per area, volume, time)
//	MolarMassAMU                g/mol ↔ u
//	Logarithmic                 dimensionless ↔ dex
//	DimensionlessAngles         rad ↔ 1 at any power
//
// Factories without parameters return the Equivalency directly. Factories
// with parameters return (Equivalency, error); every failure is an
// *equivalency.InvalidParameterError naming the factory and the parameter.
//
// ⚙️ Options
//
// WithBeamArea, WithTcmb, WithCosmology and WithHubble are shared across
// factories. A factory rejects options it does not use, and rejects WithTcmb
// or WithHubble combined with WithCosmology.
//
// 🗂 Registry
//
// Names and Build expose every factory by its snake_case name with a flat
// Params struct, for the CLI and for configuration-driven enablement.
package factory
