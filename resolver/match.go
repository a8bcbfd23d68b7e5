// SPDX-License-Identifier: MIT
// Package: lvunits/resolver
//
// match.go — testing one pair against a (from, to) request.

package resolver

import (
	"math"

	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

// Orientation tells which way a pair was used.
type Orientation string

const (
	OrientationForward  Orientation = "forward"
	OrientationReverse  Orientation = "reverse"
	OrientationCollapse Orientation = "collapse"
)

// candidate is one pair together with the equivalency that contributed it.
type candidate struct {
	owner string
	pair  equivalency.Pair
}

// match reports whether p bridges from → to and, if so, returns the full
// scaled transform from a value in `from` to a value in `to`.
func match(p equivalency.Pair, from, to units.Unit) (Orientation, equivalency.Transform, bool) {
	if p.IsCollapse() {
		return matchCollapse(p, from, to)
	}

	a, b := p.From(), p.To()
	if from.IsEquivalent(a) && to.IsEquivalent(b) {
		in, out := from.Scale()/a.Scale(), b.Scale()/to.Scale()
		f := p.Forward()

		return OrientationForward, func(v float64) float64 { return f(v*in) * out }, true
	}
	if p.HasInverse() && from.IsEquivalent(b) && to.IsEquivalent(a) {
		in, out := from.Scale()/b.Scale(), a.Scale()/to.Scale()
		g := p.Inverse()

		return OrientationReverse, func(v float64) float64 { return g(v*in) * out }, true
	}

	return "", nil, false
}

// matchCollapse handles pairs whose right side is "none". The request matches
// when to/from differs from a pure scale only by some power n of the
// collapsed base; that base is then replaced by 1/s(F) on both sides.
func matchCollapse(p equivalency.Pair, from, to units.Unit) (Orientation, equivalency.Transform, bool) {
	base := p.CollapseBase()
	ratio := to.Div(from)
	if !ratio.Without(base).IsDimensionless() {
		return "", nil, false
	}
	n := ratio.Power(base)
	k := from.Scale() / to.Scale() * math.Pow(p.From().Scale(), float64(n))
	f := p.Forward()

	return OrientationCollapse, func(v float64) float64 { return f(v * k) }, true
}

// guarded wraps a matched transform with the NaN domain check.
func (c candidate) guarded(fn equivalency.Transform) Converter {
	return func(v float64) (float64, error) {
		x := fn(v)
		if math.IsNaN(x) && !math.IsNaN(v) && !c.pair.UndefinedOutOfDomain() {
			return x, &equivalency.NumericDomainError{Equivalency: c.owner, Pair: c.pair.String(), Input: v}
		}

		return x, nil
	}
}
