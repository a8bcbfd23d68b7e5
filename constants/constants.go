// SPDX-License-Identifier: MIT

// Package constants holds the physical constants used by the equivalency
// factories. SI 2019 defining constants are exact; everything else is derived
// here once so transforms never recompute them.
package constants

// SI 2019 exact defining constants.
const (
	SpeedOfLight     = 299792458.0     // c [m s⁻¹]
	Planck           = 6.62607015e-34  // h [J s]
	Boltzmann        = 1.380649e-23    // k_B [J K⁻¹]
	ElementaryCharge = 1.602176634e-19 // e [C]
)

// Derived values in the unit systems the transforms work in.
const (
	// SpeedOfLightKMS is c in km s⁻¹ (Doppler conventions).
	SpeedOfLightKMS = SpeedOfLight / 1e3

	// SpeedOfLightAAPS is c in Å s⁻¹ (spectral density).
	SpeedOfLightAAPS = SpeedOfLight * 1e10

	// PlanckCGS is h in erg s.
	PlanckCGS = Planck * 1e7

	// HC is h·c in J m.
	HC = Planck * SpeedOfLight

	// HCCGS is h·c in erg Å.
	HCCGS = PlanckCGS * SpeedOfLightAAPS

	// ElectronVoltPerKelvin is e/k_B, the K → eV divisor.
	ElectronVoltPerKelvin = ElementaryCharge / Boltzmann

	// JanskySI is one jansky in W m⁻² Hz⁻¹.
	JanskySI = 1e-26

	// ZeroCelsius is 0 °C in kelvin.
	ZeroCelsius = 273.15

	// ZeroFahrenheitRankine is 0 °F in degrees Rankine.
	ZeroFahrenheitRankine = 459.67
)
