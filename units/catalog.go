// SPDX-License-Identifier: MIT
// Package: lvunits/units
//
// catalog.go — named units used by the equivalency factories and the CLI.
//
// Scales follow SI 2019 exact definitions and IAU 2012 for au/pc.

package units

import (
	"fmt"
	"math"
	"sort"
)

// Irreducible bases.
var (
	Meter      = NewBase("m")
	Kilogram   = NewBase("kg")
	Second     = NewBase("s")
	Ampere     = NewBase("A")
	Kelvin     = NewBase("K")
	Mole       = NewBase("mol")
	Candela    = NewBase("cd")
	Radian     = NewBase("rad")
	Pixel      = NewBase("pix")
	Photon     = NewBase("ph")
	Beam       = NewBase("beam")
	LittleH    = NewBase("littleh")
	Dex        = NewBase("dex")
	Celsius    = NewBase("deg_C")
	Fahrenheit = NewBase("deg_F")
	Rankine    = NewBase("deg_R")
)

// Length.
var (
	Centimeter = Define("cm", 1e-2, Meter)
	Millimeter = Define("mm", 1e-3, Meter)
	Micrometer = Define("um", 1e-6, Meter)
	Nanometer  = Define("nm", 1e-9, Meter)
	Kilometer  = Define("km", 1e3, Meter)
	Angstrom   = Define("AA", 1e-10, Meter)
	Inch       = Define("inch", 0.0254, Meter)
	Foot       = Define("ft", 0.3048, Meter)
	AU         = Define("au", 1.495978707e11, Meter)
	LightYear  = Define("lyr", 9.4607304725808e15, Meter)
	Parsec     = Define("pc", 3.0856775814913673e16, Meter)
	Kiloparsec = Define("kpc", 1e3, Parsec)
	Megaparsec = Define("Mpc", 1e6, Parsec)
)

// Mass, amount, time.
var (
	Gram           = Define("g", 1e-3, Kilogram)
	AtomicMassUnit = Define("u", 1.66053906660e-27, Kilogram)
	Minute         = Define("min", 60, Second)
	Hour           = Define("h", 3600, Second)
	Day            = Define("d", 86400, Second)
	Year           = Define("yr", 365.25*86400, Second)
)

// Frequency, energy, power.
var (
	Hertz        = Define("Hz", 1, Second.Inverse())
	Kilohertz    = Define("kHz", 1e3, Hertz)
	Megahertz    = Define("MHz", 1e6, Hertz)
	Gigahertz    = Define("GHz", 1e9, Hertz)
	Joule        = Define("J", 1, Kilogram.Mul(Meter.Pow(2)).Div(Second.Pow(2)))
	Erg          = Define("erg", 1e-7, Joule)
	ElectronVolt = Define("eV", 1.602176634e-19, Joule)
	KiloEV       = Define("keV", 1e3, ElectronVolt)
	MegaEV       = Define("MeV", 1e6, ElectronVolt)
	Watt         = Define("W", 1, Joule.Div(Second))
)

// Temperature.
var (
	Millikelvin = Define("mK", 1e-3, Kelvin)
)

// Angles and solid angles.
var (
	Degree          = Define("deg", math.Pi/180, Radian)
	Arcminute       = Define("arcmin", math.Pi/10800, Radian)
	Arcsecond       = Define("arcsec", math.Pi/648000, Radian)
	Milliarcsecond  = Define("mas", 1e-3, Arcsecond)
	Cycle           = Define("cycle", 2*math.Pi, Radian)
	Steradian       = Define("sr", 1, Radian.Pow(2))
	SquareDegree    = Define("deg2", 1, Degree.Pow(2))
	SquareArcsecond = Define("arcsec2", 1, Arcsecond.Pow(2))
)

// Flux density, volume, misc.
var (
	Jansky      = Define("Jy", 1e-26, Watt.Div(Meter.Pow(2)).Div(Hertz))
	MilliJansky = Define("mJy", 1e-3, Jansky)
	MegaJansky  = Define("MJy", 1e6, Jansky)
	Liter       = Define("l", 1e-3, Meter.Pow(3))
)

// catalog maps every accepted spelling to its unit. Canonical names are the
// units' own Name(); the rest are aliases.
var catalog = func() map[string]Unit {
	canon := []Unit{
		Meter, Kilogram, Second, Ampere, Kelvin, Mole, Candela, Radian,
		Pixel, Photon, Beam, LittleH, Dex, Celsius, Fahrenheit, Rankine,
		Centimeter, Millimeter, Micrometer, Nanometer, Kilometer, Angstrom,
		Inch, Foot, AU, LightYear, Parsec, Kiloparsec, Megaparsec,
		Gram, AtomicMassUnit, Minute, Hour, Day, Year,
		Hertz, Kilohertz, Megahertz, Gigahertz,
		Joule, Erg, ElectronVolt, KiloEV, MegaEV, Watt,
		Millikelvin,
		Degree, Arcminute, Arcsecond, Milliarcsecond, Cycle,
		Steradian, SquareDegree, SquareArcsecond,
		Jansky, MilliJansky, MegaJansky, Liter,
	}
	m := make(map[string]Unit, len(canon)+16)
	for _, u := range canon {
		m[u.Name()] = u
	}
	aliases := map[string]Unit{
		"Angstrom":      Angstrom,
		"micron":        Micrometer,
		"parsec":        Parsec,
		"photon":        Photon,
		"pixel":         Pixel,
		"Celsius":       Celsius,
		"Fahrenheit":    Fahrenheit,
		"Rankine":       Rankine,
		"cy":            Cycle,
		"radian":        Radian,
		"degree":        Degree,
		"steradian":     Steradian,
		"dimensionless": Dimensionless,
		"one":           Dimensionless,
		"L":             Liter,
	}
	for k, u := range aliases {
		m[k] = u
	}

	return m
}()

// Lookup returns the catalog unit registered under name.
func Lookup(name string) (Unit, bool) {
	u, ok := catalog[name]

	return u, ok
}

// MustLookup is Lookup that panics on unknown names. Intended for package
// initialisation with literal names.
func MustLookup(name string) Unit {
	u, ok := catalog[name]
	if !ok {
		panic(fmt.Sprintf("units: MustLookup(%q): %v", name, ErrUnknownUnit))
	}

	return u
}

// Names returns every accepted spelling, sorted.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Catalog returns each distinct catalog unit once (aliases excluded),
// sorted by name. Dimensionless is not included.
func Catalog() []Unit {
	out := make([]Unit, 0, len(catalog))
	for k, u := range catalog {
		if k == u.Name() && k != "" {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}
