// SPDX-License-Identifier: MIT
// Package: lvunits/units
//
// unit.go — the Unit value type and its algebra.
//
// Invariants:
//   - A Unit is immutable: dims is never written after construction, every
//     operation allocates a fresh map.
//   - Zero exponents are never stored, so map equality is dimension equality.
//   - scale > 0 for every unit produced by this package.

package units

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Power is one base symbol raised to an integer exponent.
type Power struct {
	Base string
	Exp  int
}

// Unit is scale · Π base^exp.
type Unit struct {
	name  string
	scale float64
	dims  map[string]int
}

// Dimensionless is the unscaled unit with no bases.
var Dimensionless = Unit{scale: 1}

// NewBase declares an irreducible unit named after its own base symbol.
// Panics on an empty symbol (programmer error).
func NewBase(symbol string) Unit {
	if symbol == "" {
		panic("units: NewBase: empty symbol")
	}

	return Unit{name: symbol, scale: 1, dims: map[string]int{symbol: 1}}
}

// Define returns a named unit equal to factor·of.
// Panics on a non-finite or non-positive factor (programmer error).
func Define(name string, factor float64, of Unit) Unit {
	if !(factor > 0) || math.IsInf(factor, 0) {
		panic("units: Define: factor must be finite and > 0")
	}

	return Unit{name: name, scale: factor * of.Scale(), dims: of.dims}
}

// Name returns the display name; composite units get a synthesized name.
func (u Unit) Name() string { return u.name }

// Scale returns the factor relative to the coherent product of bases.
// The zero Unit reports 1 so that it behaves as Dimensionless.
func (u Unit) Scale() float64 {
	if u.scale == 0 {
		return 1
	}

	return u.scale
}

// Named returns a copy of u with a new display name.
func (u Unit) Named(name string) Unit {
	u.name = name

	return u
}

// Scaled returns k·u.
func (u Unit) Scaled(k float64) Unit {
	return Unit{name: formatScaled(k, u.name), scale: k * u.Scale(), dims: u.dims}
}

// Mul returns u·v.
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		name:  joinName(u.name, " ", v.name),
		scale: u.Scale() * v.Scale(),
		dims:  combine(u.dims, v.dims, 1),
	}
}

// Div returns u/v.
func (u Unit) Div(v Unit) Unit {
	den := v.name
	if strings.ContainsAny(den, " /") {
		den = "(" + den + ")"
	}
	num := u.name
	if num == "" {
		num = "1"
	}

	return Unit{
		name:  joinName(num, " / ", den),
		scale: u.Scale() / v.Scale(),
		dims:  combine(u.dims, v.dims, -1),
	}
}

// Pow returns u^n. Pow(0) is Dimensionless.
func (u Unit) Pow(n int) Unit {
	if n == 0 {
		return Dimensionless
	}
	dims := make(map[string]int, len(u.dims))
	for b, e := range u.dims {
		dims[b] = e * n
	}
	name := u.name
	if strings.ContainsAny(name, " /") {
		name = "(" + name + ")"
	}
	if name != "" {
		name += "^" + strconv.Itoa(n)
	}

	return Unit{name: name, scale: math.Pow(u.Scale(), float64(n)), dims: dims}
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit { return u.Pow(-1) }

// Without drops base from u at whatever power it appears, keeping the scale.
// Used by the angle/little-h collapse bridges.
func (u Unit) Without(base string) Unit {
	if _, ok := u.dims[base]; !ok {
		return u
	}
	dims := make(map[string]int, len(u.dims))
	for b, e := range u.dims {
		if b != base {
			dims[b] = e
		}
	}

	return Unit{name: u.name, scale: u.Scale(), dims: dims}
}

// Power returns the exponent of base in u (0 when absent).
func (u Unit) Power(base string) int { return u.dims[base] }

// Decompose returns the base powers sorted by base symbol.
//
// Complexity: O(k log k) for k bases.
func (u Unit) Decompose() []Power {
	out := make([]Power, 0, len(u.dims))
	for b, e := range u.dims {
		out = append(out, Power{Base: b, Exp: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Base < out[j].Base })

	return out
}

// IsDimensionless reports whether u has no bases (scale may differ from 1).
func (u Unit) IsDimensionless() bool { return len(u.dims) == 0 }

// IsEquivalent reports whether u and v share the same base powers.
func (u Unit) IsEquivalent(v Unit) bool { return IsEquivalent(u, v) }

// IsEquivalent reports whether a and b share the same base powers.
func IsEquivalent(a, b Unit) bool {
	if len(a.dims) != len(b.dims) {
		return false
	}
	for k, e := range a.dims {
		if b.dims[k] != e {
			return false
		}
	}

	return true
}

// ScaleTo returns the factor f such that x[u] == x·f [v].
// Fails with ErrIncompatible when the dimensions differ.
func (u Unit) ScaleTo(v Unit) (float64, error) {
	if !IsEquivalent(u, v) {
		return 0, fmt.Errorf("%w: %q (%s) vs %q (%s)", ErrIncompatible, u.String(), u.Key(), v.String(), v.Key())
	}

	return u.Scale() / v.Scale(), nil
}

// Key is the canonical dimension signature, e.g. "kg^1 m^2 s^-2".
// Dimensionless units return "".
func (u Unit) Key() string {
	parts := u.Decompose()
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Base)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(p.Exp))
	}

	return sb.String()
}

// String returns the display name, falling back to scale and key.
func (u Unit) String() string {
	if u.name != "" {
		return u.name
	}
	if u.IsDimensionless() && u.Scale() == 1 {
		return "dimensionless"
	}

	return formatScaled(u.Scale(), u.Key())
}

func combine(a, b map[string]int, sign int) map[string]int {
	out := make(map[string]int, len(a)+len(b))
	for k, e := range a {
		out[k] = e
	}
	for k, e := range b {
		if n := out[k] + sign*e; n != 0 {
			out[k] = n
		} else {
			delete(out, k)
		}
	}

	return out
}

func joinName(a, sep, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + sep + b
	}
}

func formatScaled(k float64, name string) string {
	return joinName(strconv.FormatFloat(k, 'g', -1, 64), " ", name)
}
