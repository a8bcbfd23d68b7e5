// SPDX-License-Identifier: MIT

// Package equivalency models bridges between units that ordinary
// dimensional analysis refuses to convert.
//
// 🚀 What is an equivalency?
//
//	A named, ordered list of Pairs. Each Pair says "values in From can be
//	turned into values in To with this numeric function (and back with that
//	one)". The functions are unit-free: the resolver strips scale factors
//	before calling them and re-applies them afterwards.
//
//	  spectral:    m ↔ Hz  via c/x
//	  temperature: K ↔ °C  via x-273.15 / x+273.15
//	  parallax:    arcsec ↔ pc via 1/x (negative ⇒ NaN, by policy)
//
// ✨ Pair shapes (normalised into one struct at construction time):
//   - NewPair(a, b, f, g)   forward f, inverse g
//   - Involution(a, b, f)   f undoes itself (1/x, c/x): used both ways
//   - Bridge(a, b)          identity both ways
//   - OneWay(a, b, f)       forward only; the reverse orientation never matches
//   - Collapse(a)           a's base is dropped at any power (angles, little-h)
//
// ⚙️ Composition:
//
//	spectral.Add(temperature)  // pairs concatenated, names joined, kwargs merged
//
// Composition preserves left-to-right precedence and is associative for
// resolution: (A+B)+C and A+(B+C) flatten to the same pair order.
//
// Errors: sentinel values (ErrInvalidParameter, ErrUnconvertible,
// ErrNumericDomain) wrapped by typed errors carrying the unit names and the
// offending pair. Branch with errors.Is / errors.As.
package equivalency
