// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// options.go — functional options shared by the parameterised factories.
//
// Contract:
//   • Option constructors panic on zero quantities and empty cosmologies
//     (programmer error). Dimensional checks happen in the factory and come
//     back as *equivalency.InvalidParameterError.
//   • Each factory declares which options it accepts; passing any other
//     option is an InvalidParameterError, not a silent no-op.

package factory

import (
	"github.com/katalvlaran/lvunits/units"
)

// Option customises a factory call.
type Option func(*config)

// optionSet records which options were applied.
type optionSet uint8

const (
	optBeamArea optionSet = 1 << iota
	optTcmb
	optCosmology
	optHubble
)

var optionNames = map[optionSet]string{
	optBeamArea:  "beam_area",
	optTcmb:      "T_cmb",
	optCosmology: "cosmology",
	optHubble:    "H0",
}

type config struct {
	beamArea  units.Quantity
	tcmb      units.Quantity
	hubble    units.Quantity
	cosmology Cosmology
	set       optionSet
}

// WithBeamArea sets the beam solid angle (sr-equivalent).
func WithBeamArea(area units.Quantity) Option {
	if area.IsZero() {
		panic("factory: WithBeamArea(zero quantity)")
	}

	return func(c *config) {
		c.beamArea = area
		c.set |= optBeamArea
	}
}

// WithTcmb sets the CMB temperature explicitly.
func WithTcmb(t units.Quantity) Option {
	if t.IsZero() {
		panic("factory: WithTcmb(zero quantity)")
	}

	return func(c *config) {
		c.tcmb = t
		c.set |= optTcmb
	}
}

// WithHubble sets H0 explicitly (velocity per distance).
func WithHubble(h0 units.Quantity) Option {
	if h0.IsZero() {
		panic("factory: WithHubble(zero quantity)")
	}

	return func(c *config) {
		c.hubble = h0
		c.set |= optHubble
	}
}

// WithCosmology takes H0 and Tcmb0 from cosm.
func WithCosmology(cosm Cosmology) Option {
	if cosm.H0.IsZero() && cosm.Tcmb0.IsZero() {
		panic("factory: WithCosmology(empty cosmology)")
	}

	return func(c *config) {
		c.cosmology = cosm
		c.set |= optCosmology
	}
}

// newConfig applies opts and rejects any option outside accepted.
func newConfig(factory string, accepted optionSet, opts []Option) (config, error) {
	c := config{cosmology: DefaultCosmology}
	for _, opt := range opts {
		opt(&c)
	}
	extra := c.set &^ accepted
	for bit := optBeamArea; bit <= optHubble; bit <<= 1 {
		if extra&bit != 0 {
			return config{}, invalid(factory, optionNames[bit], "option not accepted by %s", factory)
		}
	}

	return c, nil
}

// exclusive fails when both a and b were applied.
func (c config) exclusive(factory string, a, b optionSet) error {
	if c.set&a != 0 && c.set&b != 0 {
		return invalid(factory, optionNames[a], "mutually exclusive with %s", optionNames[b])
	}

	return nil
}

func (c config) has(o optionSet) bool { return c.set&o != 0 }
