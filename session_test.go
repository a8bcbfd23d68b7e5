// SPDX-License-Identifier: MIT
package lvunits_test

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits"
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/factory"
	"github.com/katalvlaran/lvunits/resolver"
	"github.com/katalvlaran/lvunits/units"
)

type countingObserver struct{ n int }

func (c *countingObserver) Observe(resolver.Path, string) { c.n++ }

func TestSession_WithScopesTemperature(t *testing.T) {
	s := lvunits.NewSession()

	_, err := s.Convert(0, units.Celsius, units.Kelvin)
	require.ErrorIs(t, err, equivalency.ErrUnconvertible)

	err = s.With(factory.Temperature(), func() error {
		k, err := s.Convert(0, units.Celsius, units.Kelvin)
		require.NoError(t, err)
		assert.Equal(t, 273.15, k)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Stack().Depth())

	_, err = s.Convert(0, units.Celsius, units.Kelvin)
	assert.ErrorIs(t, err, equivalency.ErrUnconvertible)
}

func TestSession_WithPropagatesError(t *testing.T) {
	s := lvunits.NewSession()
	boom := errors.New("boom")

	err := s.With(factory.Parallax(), func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, s.Stack().Frames())
}

func TestSession_PersistentEnable(t *testing.T) {
	s := lvunits.NewSession(lvunits.WithEnabled(factory.DimensionlessAngles()))

	v, err := s.Convert(180, units.Degree, units.Dimensionless)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 1e-12)

	restore := s.SetEnabled(factory.Spectral())
	_, err = s.Convert(180, units.Degree, units.Dimensionless)
	assert.ErrorIs(t, err, equivalency.ErrUnconvertible)

	q, err := s.ConvertQuantity(units.Q(1000, units.Nanometer), units.Hertz)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.99792458e14, q.Value, 1e-12)

	restore()
	s.Enable(factory.Logarithmic())
	assert.Len(t, s.Stack().Enabled(), 2)
	assert.Contains(t, unitNames(s.EquivalentUnits(units.Dimensionless)), "dex")
}

func TestSession_SharesLoggerAndObserver(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	obs := &countingObserver{}
	s := lvunits.NewSession(lvunits.WithLogger(logger), lvunits.WithObserver(obs))

	_ = s.With(factory.Temperature(), func() error {
		_, err := s.Convert(32, units.Fahrenheit, units.Celsius)

		return err
	})

	assert.Equal(t, 1, obs.n)
	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"scope push", "equivalency conversion", "scope pop"}, msgs)
	assert.Same(t, s.Stack(), s.Resolver().Stack())
}

func TestSession_OptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { lvunits.WithLogger(nil) })
	assert.Panics(t, func() { lvunits.WithObserver(nil) })
}

func unitNames(us []units.Unit) []string {
	out := make([]string, 0, len(us))
	for _, u := range us {
		out = append(out, u.Name())
	}

	return out
}
