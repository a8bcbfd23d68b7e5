// SPDX-License-Identifier: MIT
package equivalency_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

func double(x float64) float64 { return 2 * x }
func half(x float64) float64   { return x / 2 }
func recip(x float64) float64  { return 1 / x }

// pairLabels flattens an equivalency into comparable strings.
func pairLabels(e equivalency.Equivalency) []string {
	var out []string
	for _, p := range e.Pairs() {
		out = append(out, p.String())
	}

	return out
}

func TestPair_Shapes(t *testing.T) {
	full := equivalency.NewPair(units.Liter, units.Gram, double, half)
	assert.Equal(t, equivalency.ShapeFull, full.Shape())
	assert.True(t, full.HasInverse())
	assert.Equal(t, "l <-> g", full.String())

	inv := equivalency.Involution(units.Meter, units.Hertz, recip)
	assert.Equal(t, 4.0, inv.Inverse()(0.25), "involution reuses forward as inverse")

	br := equivalency.Bridge(units.Pixel, units.Inch)
	assert.Equal(t, 3.5, br.Forward()(3.5))
	assert.Equal(t, 3.5, br.Inverse()(3.5))

	one := equivalency.OneWay(units.Meter, units.Kelvin, double)
	assert.False(t, one.HasInverse())
	assert.Nil(t, one.Inverse())
	assert.Equal(t, "m -> K", one.String())

	col := equivalency.Collapse(units.Radian)
	assert.True(t, col.IsCollapse())
	assert.Equal(t, "rad", col.CollapseBase())
	assert.True(t, col.To().IsDimensionless())
	assert.Equal(t, "rad <-> none", col.String())
	assert.Equal(t, "", full.CollapseBase())

	und := equivalency.Involution(units.Arcsecond, units.Parsec, recip, equivalency.WithUndefinedOutOfDomain())
	assert.True(t, und.UndefinedOutOfDomain())
	assert.False(t, inv.UndefinedOutOfDomain())
}

func TestPair_ConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { equivalency.NewPair(units.Meter, units.Hertz, nil, half) })
	assert.Panics(t, func() { equivalency.NewPair(units.Meter, units.Hertz, double, nil) })
	assert.Panics(t, func() { equivalency.Involution(units.Meter, units.Hertz, nil) })
	assert.Panics(t, func() { equivalency.OneWay(units.Meter, units.Hertz, nil) })
	assert.Panics(t, func() { equivalency.Collapse(units.Steradian) }, "rad^2 is not a single base at power 1")
	assert.Panics(t, func() { equivalency.Collapse(units.Hertz) }, "s^-1 has power -1")
	assert.NotPanics(t, func() { equivalency.Collapse(units.Q(0.7, units.LittleH).AsUnit()) })
}

// TestPair_RoundTrip checks g(f(v)) == v for full and involution shapes.
func TestPair_RoundTrip(t *testing.T) {
	pairs := []equivalency.Pair{
		equivalency.NewPair(units.Liter, units.Gram, double, half),
		equivalency.Involution(units.Meter, units.Hertz, recip),
		equivalency.Bridge(units.Pixel, units.Inch),
	}
	for _, p := range pairs {
		for _, v := range []float64{1e-9, 0.5, 3, 1e12} {
			assert.InEpsilon(t, v, p.Inverse()(p.Forward()(v)), 1e-12, p.String())
		}
	}
}

func TestEquivalency_New_CopiesInputs(t *testing.T) {
	kw := map[string]any{"rest": 1.0}
	pairs := []equivalency.Pair{equivalency.Bridge(units.Pixel, units.Inch)}
	e := equivalency.New("demo", kw, pairs...)

	kw["rest"] = 2.0
	pairs[0] = equivalency.Bridge(units.Meter, units.Kelvin)

	assert.Equal(t, 1.0, e.Kwargs()["rest"])
	assert.Equal(t, "pix <-> inch", e.Pairs()[0].String())

	got := e.Kwargs()
	got["rest"] = 3.0
	assert.Equal(t, 1.0, e.Kwargs()["rest"], "Kwargs returns a copy")
}

func TestEquivalency_Add(t *testing.T) {
	a := equivalency.New("a", map[string]any{"x": 1, "shared": "a"}, equivalency.Bridge(units.Pixel, units.Inch))
	b := equivalency.New("b", map[string]any{"shared": "b"}, equivalency.Bridge(units.Beam, units.Steradian), equivalency.Collapse(units.Radian))

	ab := a.Add(b)
	assert.Equal(t, "a+b", ab.Name())
	assert.Equal(t, []string{"a", "b"}, ab.Names())
	assert.Equal(t, 3, ab.Len())
	assert.Equal(t, []string{"pix <-> inch", "beam <-> sr", "rad <-> none"}, pairLabels(ab))
	assert.Equal(t, map[string]any{"x": 1, "shared": "b"}, ab.Kwargs(), "later keys override")

	// inputs untouched
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "a", a.Kwargs()["shared"])
	assert.Equal(t, "a(1 pair)", a.String())
	assert.Equal(t, "a+b(3 pairs)", ab.String())
}

func TestEquivalency_AddDoesNotAlias(t *testing.T) {
	base := equivalency.New("base", nil, equivalency.Bridge(units.Pixel, units.Inch))
	x := base.Add(equivalency.New("x", nil, equivalency.Bridge(units.Beam, units.Steradian)))
	y := base.Add(equivalency.New("y", nil, equivalency.Collapse(units.Radian)))

	assert.Equal(t, []string{"pix <-> inch", "beam <-> sr"}, pairLabels(x))
	assert.Equal(t, []string{"pix <-> inch", "rad <-> none"}, pairLabels(y))
}

// TestEquivalency_Associative checks (A+B)+C and A+(B+C) flatten identically.
func TestEquivalency_Associative(t *testing.T) {
	a := equivalency.New("a", map[string]any{"k": "a"}, equivalency.Bridge(units.Pixel, units.Inch))
	b := equivalency.New("b", map[string]any{"k": "b", "j": 1}, equivalency.Bridge(units.Beam, units.Steradian))
	c := equivalency.New("c", map[string]any{"k": "c"}, equivalency.Collapse(units.Radian), equivalency.Involution(units.Meter, units.Hertz, recip))

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	flat := equivalency.Compose(a, b, c)

	assert.Equal(t, pairLabels(left), pairLabels(right))
	assert.Equal(t, pairLabels(left), pairLabels(flat))
	assert.True(t, left.Equal(right))
	assert.True(t, left.Equal(flat))
}

func TestEquivalency_EqualAndEmpty(t *testing.T) {
	e1 := equivalency.New("doppler_radio", map[string]any{"rest": units.Q(115.27, units.Gigahertz)}, equivalency.Bridge(units.Pixel, units.Inch))
	e2 := equivalency.New("doppler_radio", map[string]any{"rest": units.Q(115.27, units.Gigahertz)}, equivalency.Bridge(units.Pixel, units.Inch))
	e3 := equivalency.New("doppler_radio", map[string]any{"rest": units.Q(100, units.Gigahertz)}, equivalency.Bridge(units.Pixel, units.Inch))
	assert.True(t, e1.Equal(e2))
	assert.False(t, e1.Equal(e3))
	assert.False(t, e1.Equal(equivalency.Custom(equivalency.Bridge(units.Pixel, units.Inch))))

	var zero equivalency.Equivalency
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, "<empty>(0 pairs)", zero.String())
	assert.True(t, equivalency.Compose().IsEmpty())
	assert.Equal(t, equivalency.CustomName, equivalency.Custom().Name())
}

func TestErrors_Unwrap(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{&equivalency.InvalidParameterError{Factory: "pixel_scale", Param: "pixscale", Reason: "pixel power must be ±1"}, equivalency.ErrInvalidParameter},
		{&equivalency.UnconvertibleError{From: "m", To: "kg", Candidates: 0}, equivalency.ErrUnconvertible},
		{&equivalency.NumericDomainError{Equivalency: "logarithmic", Pair: " <-> dex", Input: -1}, equivalency.ErrNumericDomain},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%T", tc.err), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.want)
			require.True(t, errors.Is(wrapped, tc.want))
		})
	}

	var ue *equivalency.UnconvertibleError
	err := fmt.Errorf("ctx: %w", &equivalency.UnconvertibleError{From: "m", To: "kg"})
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "kg", ue.To)
	assert.Contains(t, err.Error(), `"m" to "kg"`)
}
