// SPDX-License-Identifier: MIT
package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/units"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		expr string
		want units.Unit
	}{
		{"", units.Dimensionless},
		{"km/s", units.Kilometer.Div(units.Second)},
		{"erg/cm^2/s/Hz", units.Erg.Div(units.Centimeter.Pow(2)).Div(units.Second).Div(units.Hertz)},
		{"ph / cm**2 s AA", units.Photon.Div(units.Centimeter.Pow(2).Mul(units.Second).Mul(units.Angstrom))},
		{"Jy/beam", units.Jansky.Div(units.Beam)},
		{"m^-1", units.Meter.Inverse()},
		{"1e-26 W/m^2/Hz", units.Jansky},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := units.Parse(tc.expr)
			require.NoError(t, err)
			assert.True(t, got.IsEquivalent(tc.want), "dims: got %s want %s", got.Key(), tc.want.Key())
			assert.InEpsilon(t, tc.want.Scale(), got.Scale(), 1e-12)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := units.Parse("furlong")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)

	_, err = units.Parse("m/")
	assert.ErrorIs(t, err, units.ErrSyntax)

	_, err = units.Parse("m^x")
	assert.ErrorIs(t, err, units.ErrSyntax)

	_, err = units.Parse("-3 m")
	assert.ErrorIs(t, err, units.ErrSyntax)
}

func TestParseQuantity(t *testing.T) {
	q, err := units.ParseQuantity("115.2712 GHz")
	require.NoError(t, err)
	assert.Equal(t, 115.2712, q.Value)
	hz, err := q.In(units.Hertz)
	require.NoError(t, err)
	assert.InEpsilon(t, 115.2712e9, hz, 1e-12)

	q, err = units.ParseQuantity("100 pix/inch")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Unit.Power("pix"))
	assert.Equal(t, -1, q.Unit.Power("m"))

	q, err = units.ParseQuantity("42")
	require.NoError(t, err)
	assert.True(t, q.Unit.IsDimensionless())

	_, err = units.ParseQuantity("GHz 5")
	assert.ErrorIs(t, err, units.ErrSyntax)
}

func TestQuantity_AsUnit(t *testing.T) {
	u := units.Q(100, units.Pixel.Div(units.Inch)).AsUnit()
	assert.InEpsilon(t, 100/0.0254, u.Scale(), 1e-12)
	assert.Equal(t, "100 pix / inch", u.Name())
}

func TestLookup(t *testing.T) {
	u, ok := units.Lookup("Angstrom")
	require.True(t, ok)
	assert.Equal(t, "AA", u.Name())

	_, ok = units.Lookup("parsecs")
	assert.False(t, ok)

	assert.Panics(t, func() { units.MustLookup("nope") })
	assert.Contains(t, units.Names(), "deg_C")
	for _, u := range units.Catalog() {
		assert.NotEmpty(t, u.Name())
	}
}
