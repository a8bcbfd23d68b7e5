// Package lvunits converts values between physically incompatible units
// through named equivalencies: wavelength ↔ frequency, °C ↔ K, parallax ↔
// distance, Jy/sr ↔ brightness temperature and the rest of the catalogue in
// factory/.
//
// 🚀 What is lvunits?
//
//	A small, dependency-light conversion core that brings together:
//		• Units: dimensions as base-power maps, scale factors, a named catalog
//		• Equivalencies: ordered (from, to, forward, inverse) pairs, composable with Add
//		• Scopes: persistent and block-scoped enablement on an explicit Stack
//		• Resolution: direct scaling first, then a first-match scan of pairs
//		• Factories: spectral, Doppler, temperature, radio, cosmology, scale bridges
//		• Metrics: a Prometheus observer counting resolutions by path
//
// ✨ Why lvunits?
//
//   - No hidden globals – every Session owns its Stack
//   - Predictable – explicit pairs win over enabled ones; first match wins
//   - Honest errors – Unconvertible, InvalidParameter, NumericDomain, all errors.Is-able
//   - Observable – Debug/Trace logging through logrus, counters through Prometheus
//
// Layout:
//
//	units/        — Unit, Dimension, Quantity, catalog and a minimal parser
//	constants/    — SI exact and CODATA constants
//	equivalency/  — Pair, Equivalency, composition, error taxonomy
//	scope/        — Stack of persistent and scoped equivalency frames
//	resolver/     — Resolver: Converter, Convert, ConvertAll, EquivalentUnits
//	factory/      — ready-made equivalencies and a name → builder registry
//	metrics/      — Prometheus collector implementing resolver.Observer
//	cmd/lvunits/  — command-line front end
//
// Quick start:
//
//	s := lvunits.NewSession()
//	v, err := s.Convert(500, units.Nanometer, units.Gigahertz, factory.Spectral())
//
//	err = s.With(factory.Temperature(), func() error {
//		f, err := s.Convert(100, units.Celsius, units.Fahrenheit)
//		...
//	})
//
// A Session is not safe for concurrent mutation; give each goroutine its own
// or serialise access externally.
package lvunits
