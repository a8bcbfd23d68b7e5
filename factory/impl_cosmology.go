// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_cosmology.go — little-h.

package factory

import (
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const nameWithH0 = "with_H0"

// WithH0 removes little-h from a unit using H0 from WithHubble, from
// WithCosmology, or from DefaultCosmology; the two options are exclusive.
// One littleh is H0/(100 km/s/Mpc), at any power:
//
//	Mpc/littleh → Mpc     divides by h
//	littleh²/Mpc³ → Mpc⁻³ multiplies by h²
func WithH0(opts ...Option) (equivalency.Equivalency, error) {
	cfg, err := newConfig(nameWithH0, optHubble|optCosmology, opts)
	if err != nil {
		return equivalency.Equivalency{}, err
	}
	if err = cfg.exclusive(nameWithH0, optHubble, optCosmology); err != nil {
		return equivalency.Equivalency{}, err
	}

	h0 := cfg.cosmology.H0
	if cfg.has(optHubble) {
		h0 = cfg.hubble
	}
	v, err := h0.In(HubbleUnit)
	if err != nil || !positive(v) {
		return equivalency.Equivalency{}, invalid(nameWithH0, "H0", "%s is not a positive velocity per distance", h0)
	}

	h100 := units.Q(100/v, units.LittleH).AsUnit()

	return equivalency.New(nameWithH0, map[string]any{"H0": h0}, equivalency.Collapse(h100)), nil
}
