// SPDX-License-Identifier: MIT
// Package: lvunits/metrics
//
// metrics.go — Prometheus counters fed by resolver.Observer.

// Package metrics counts conversion outcomes for Prometheus.
//
// A Collector is both a resolver.Observer and a prometheus.Collector:
//
//	reg := prometheus.NewRegistry()
//	c, _ := metrics.NewCollector(reg)
//	r := resolver.New(resolver.WithObserver(c))
//
// Series:
//
//	lvunits_conversions_total{path, equivalency}
//	lvunits_equivalency_conversions_total{equivalency}
//
// The second series counts only the equivalency path.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvunits/resolver"
)

const namespace = "lvunits"

// Collector counts resolutions by outcome.
type Collector struct {
	conversions *prometheus.CounterVec
	byEquiv     *prometheus.CounterVec
}

var _ resolver.Observer = (*Collector)(nil)

// NewCollector builds a Collector and registers it with reg. A nil reg skips
// registration.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Unit conversions resolved, by path and contributing equivalency.",
		}, []string{"path", "equivalency"}),
		byEquiv: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "equivalency_conversions_total",
			Help:      "Unit conversions that went through an equivalency pair.",
		}, []string{"equivalency"}),
	}
	if reg != nil {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Observe implements resolver.Observer.
func (c *Collector) Observe(path resolver.Path, equivalency string) {
	c.conversions.WithLabelValues(string(path), equivalency).Inc()
	if path == resolver.PathEquivalency {
		c.byEquiv.WithLabelValues(equivalency).Inc()
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.conversions.Describe(ch)
	c.byEquiv.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.conversions.Collect(ch)
	c.byEquiv.Collect(ch)
}

// WriteText gathers g and writes the text exposition format to w.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
