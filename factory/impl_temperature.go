// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_temperature.go — offset temperature scales and thermal energy.

package factory

import (
	"github.com/katalvlaran/lvunits/constants"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const (
	nameTemperature       = "temperature"
	nameTemperatureEnergy = "temperature_energy"
)

const (
	zeroC   = constants.ZeroCelsius
	zeroFR  = constants.ZeroFahrenheitRankine
	zeroCR  = zeroC * 1.8 // 491.67 °R
	fPerC   = 1.8
	freezeF = 32.0
)

// Temperature bridges K, °C, °F and °R. The scales differ by offsets, which
// plain unit scaling cannot express, so every pairing is listed.
func Temperature() equivalency.Equivalency {
	return equivalency.New(nameTemperature, nil,
		equivalency.NewPair(units.Kelvin, units.Celsius,
			func(x float64) float64 { return x - zeroC },
			func(x float64) float64 { return x + zeroC }),
		equivalency.NewPair(units.Celsius, units.Fahrenheit,
			func(x float64) float64 { return x*fPerC + freezeF },
			func(x float64) float64 { return (x - freezeF) / fPerC }),
		equivalency.NewPair(units.Kelvin, units.Fahrenheit,
			func(x float64) float64 { return (x-zeroC)*fPerC + freezeF },
			func(x float64) float64 { return (x-freezeF)/fPerC + zeroC }),
		equivalency.NewPair(units.Rankine, units.Fahrenheit,
			func(x float64) float64 { return x - zeroFR },
			func(x float64) float64 { return x + zeroFR }),
		equivalency.NewPair(units.Rankine, units.Celsius,
			func(x float64) float64 { return (x - zeroCR) * (5.0 / 9.0) },
			func(x float64) float64 { return x*fPerC + zeroCR }),
		equivalency.NewPair(units.Rankine, units.Kelvin,
			func(x float64) float64 { return x * (5.0 / 9.0) },
			func(x float64) float64 { return x * fPerC }),
	)
}

// TemperatureEnergy maps a temperature to the thermal energy k_B·T in eV.
func TemperatureEnergy() equivalency.Equivalency {
	const ek = constants.ElectronVoltPerKelvin

	return equivalency.New(nameTemperatureEnergy, nil,
		equivalency.NewPair(units.Kelvin, units.ElectronVolt,
			func(x float64) float64 { return x / ek },
			func(x float64) float64 { return x * ek }),
	)
}
