// SPDX-License-Identifier: MIT
package metrics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvunits/factory"
	"github.com/katalvlaran/lvunits/metrics"
	"github.com/katalvlaran/lvunits/resolver"
	"github.com/katalvlaran/lvunits/units"
)

func TestCollector_CountsResolutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	r := resolver.New(resolver.WithObserver(c))

	_, _ = r.Convert(1, units.Kilometer, units.Meter)
	_, _ = r.Convert(1, units.Nanometer, units.Hertz, factory.Spectral())
	_, _ = r.Convert(2, units.Nanometer, units.Hertz, factory.Spectral())
	_, _ = r.Convert(1, units.Meter, units.Kilogram)

	expected := `
# HELP lvunits_conversions_total Unit conversions resolved, by path and contributing equivalency.
# TYPE lvunits_conversions_total counter
lvunits_conversions_total{equivalency="",path="direct"} 1
lvunits_conversions_total{equivalency="",path="failed"} 1
lvunits_conversions_total{equivalency="spectral",path="equivalency"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lvunits_conversions_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(c, "lvunits_equivalency_conversions_total"))
}

func TestCollector_NilRegistererAndDuplicate(t *testing.T) {
	c, err := metrics.NewCollector(nil)
	require.NoError(t, err)
	c.Observe(resolver.PathDirect, "")
	assert.Equal(t, 1, testutil.CollectAndCount(c, "lvunits_conversions_total"))

	reg := prometheus.NewRegistry()
	_, err = metrics.NewCollector(reg)
	require.NoError(t, err)
	_, err = metrics.NewCollector(reg)
	require.Error(t, err)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	c.Observe(resolver.PathEquivalency, "temperature")

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `lvunits_conversions_total{equivalency="temperature",path="equivalency"} 1`)
	assert.Contains(t, out, `lvunits_equivalency_conversions_total{equivalency="temperature"} 1`)
}
