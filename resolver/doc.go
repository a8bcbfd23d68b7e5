// SPDX-License-Identifier: MIT

// Package resolver turns (value, source unit, target unit) into a converted
// value, directly when the units share dimensions and otherwise through one
// equivalency pair.
//
// 🔎 Resolution order
//
//  1. Direct: source and target have identical base powers → pure scaling.
//  2. Candidates, in this exact order, first match wins:
//     explicit equivalencies passed to the call (in argument order), then the
//     stack frames (persistent first, then scoped, outermost first).
//     Each pair is tried forward (source ~ left, target ~ right), then
//     reverse (source ~ right, target ~ left) when it has an inverse.
//  3. Otherwise *equivalency.UnconvertibleError.
//
// There is no transitive search: a conversion needing two pairs fails. There
// is no conflict detection either: when two pairs could bridge the same units,
// the earlier one in the order above silently wins.
//
// ⚙️ Scaling around a pair
//
// For a pair (A, B, f, g) matched forward, with s(u) the scale of u:
//
//	result = f(v · s(from)/s(A)) · s(B)/s(to)
//
// A collapse pair with unit F (one base b, scale s(F)) matches whenever
// to/from is b^n times a dimensionless factor, for any integer n, and yields
//
//	result = v · s(from)/s(to) · s(F)^n
//
// so "deg → dimensionless" and "kg m² (cycle/s)² → J" both work off the same
// radian pair.
//
// 🧮 Numeric domain
//
// A transform that returns NaN for a non-NaN input fails with
// *equivalency.NumericDomainError, unless the pair was declared with
// equivalency.WithUndefinedOutOfDomain (parallax of a negative angle).
//
// A Resolver only reads its stack; see package scope for ownership rules.
package resolver
