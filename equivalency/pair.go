// SPDX-License-Identifier: MIT
// Package: lvunits/equivalency
//
// pair.go — Pair, the single bridge between two units.
//
// Design:
//   • One struct for every tuple shape seen in equivalency tables; the shape
//     is resolved at construction, never sniffed at resolution time.
//   • Pair is a value: copying it into several Equivalency compositions is
//     safe because nothing in it is mutable after construction.
//   • Constructors panic on nil transforms (programmer error); resolution
//     itself never panics.

package equivalency

import "github.com/katalvlaran/lvunits/units"

// Transform maps a unit-free magnitude to another unit-free magnitude.
// It must be pure and must not know about units.
type Transform func(float64) float64

// Identity returns x unchanged.
func Identity(x float64) float64 { return x }

// Shape records which constructor produced a Pair.
type Shape int

const (
	// ShapeFull has distinct forward and inverse transforms.
	ShapeFull Shape = iota
	// ShapeInvolution uses the forward transform in both directions.
	ShapeInvolution
	// ShapeBridge is identity in both directions.
	ShapeBridge
	// ShapeOneWay has no inverse; only the forward orientation can match.
	ShapeOneWay
	// ShapeCollapse drops its unit's base at any power (right side is "none").
	ShapeCollapse
)

var shapeNames = [...]string{"full", "involution", "bridge", "one-way", "collapse"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}

	return "unknown"
}

// Pair bridges From and To.
type Pair struct {
	from, to  units.Unit
	forward   Transform
	inverse   Transform
	shape     Shape
	undefined bool
}

// PairOption adjusts a Pair at construction.
type PairOption func(*Pair)

// WithUndefinedOutOfDomain declares that NaN results are the documented
// "undefined" answer of this pair and must be returned instead of raising
// a NumericDomainError.
func WithUndefinedOutOfDomain() PairOption {
	return func(p *Pair) { p.undefined = true }
}

// NewPair builds a pair with explicit forward and inverse transforms.
func NewPair(from, to units.Unit, forward, inverse Transform, opts ...PairOption) Pair {
	if forward == nil || inverse == nil {
		panic("equivalency: NewPair: nil transform")
	}

	return build(Pair{from: from, to: to, forward: forward, inverse: inverse, shape: ShapeFull}, opts)
}

// Involution builds a pair whose forward transform is its own inverse
// (1/x, c/x, hc/x).
func Involution(from, to units.Unit, f Transform, opts ...PairOption) Pair {
	if f == nil {
		panic("equivalency: Involution: nil transform")
	}

	return build(Pair{from: from, to: to, forward: f, inverse: f, shape: ShapeInvolution}, opts)
}

// Bridge declares two units interchangeable with identity transforms.
func Bridge(from, to units.Unit, opts ...PairOption) Pair {
	return build(Pair{from: from, to: to, forward: Identity, inverse: Identity, shape: ShapeBridge}, opts)
}

// OneWay builds a forward-only pair. Requests in the reverse orientation skip it.
func OneWay(from, to units.Unit, forward Transform, opts ...PairOption) Pair {
	if forward == nil {
		panic("equivalency: OneWay: nil transform")
	}

	return build(Pair{from: from, to: to, forward: forward, shape: ShapeOneWay}, opts)
}

// Collapse declares u's base symbol droppable: any two units whose ratio is a
// pure power of u convert into each other, scaled by u's scale factor.
// u must decompose to exactly one base at power 1 (rad, k·littleh).
func Collapse(u units.Unit, opts ...PairOption) Pair {
	parts := u.Decompose()
	if len(parts) != 1 || parts[0].Exp != 1 {
		panic("equivalency: Collapse: unit must be a single base at power 1")
	}

	return build(Pair{from: u, to: units.Dimensionless, forward: Identity, inverse: Identity, shape: ShapeCollapse}, opts)
}

func build(p Pair, opts []PairOption) Pair {
	for _, o := range opts {
		o(&p)
	}

	return p
}

// From returns the left side of the pair.
func (p Pair) From() units.Unit { return p.from }

// To returns the right side; Dimensionless for collapse pairs.
func (p Pair) To() units.Unit { return p.to }

// Forward returns the From → To transform.
func (p Pair) Forward() Transform { return p.forward }

// Inverse returns the To → From transform, or nil for one-way pairs.
func (p Pair) Inverse() Transform { return p.inverse }

// HasInverse reports whether the reverse orientation can match.
func (p Pair) HasInverse() bool { return p.inverse != nil }

// Shape reports the constructor shape.
func (p Pair) Shape() Shape { return p.shape }

// IsCollapse reports whether the right side is "none".
func (p Pair) IsCollapse() bool { return p.shape == ShapeCollapse }

// CollapseBase returns the base symbol dropped by a collapse pair.
func (p Pair) CollapseBase() string {
	if !p.IsCollapse() {
		return ""
	}

	return p.from.Decompose()[0].Base
}

// UndefinedOutOfDomain reports whether NaN outputs are returned as-is.
func (p Pair) UndefinedOutOfDomain() bool { return p.undefined }

// String renders "from <-> to", "from -> to" or "from <-> none".
func (p Pair) String() string {
	switch {
	case p.IsCollapse():
		return p.from.String() + " <-> none"
	case p.inverse == nil:
		return p.from.String() + " -> " + p.to.String()
	default:
		return p.from.String() + " <-> " + p.to.String()
	}
}
