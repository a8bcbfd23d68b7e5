// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// impl_scale.go — detector geometry: pixel scale and plate scale.

package factory

import (
	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

const (
	namePixelScale = "pixel_scale"
	namePlateScale = "plate_scale"
)

// PixelScale bridges pix with the physical unit one pixel spans. scale is
// either <unit>/pix (0.2 arcsec/pix) or pix/<unit> (100 pix/inch); any other
// pixel power is rejected.
func PixelScale(scale units.Quantity) (equivalency.Equivalency, error) {
	if !positive(scale.Value) {
		return equivalency.Equivalency{}, invalid(namePixelScale, "pixscale", "%s must be positive and finite", scale)
	}

	var physical units.Unit
	switch scale.Unit.Power(units.Pixel.Name()) {
	case -1:
		physical = scale.AsUnit().Mul(units.Pixel)
	case 1:
		physical = units.Pixel.Div(scale.AsUnit())
	default:
		return equivalency.Equivalency{}, invalid(namePixelScale, "pixscale",
			"%s must have pixel dimensionality of 1 or -1", scale)
	}

	return equivalency.New(namePixelScale, map[string]any{"pixscale": scale},
		equivalency.Bridge(units.Pixel, physical),
	), nil
}

// plateConfig is the plate scale in rad per metre of focal plane.
type plateConfig struct{ radPerM float64 }

func (p plateConfig) toAngle(d float64) float64  { return d * p.radPerM }
func (p plateConfig) toLength(a float64) float64 { return a / p.radPerM }

// PlateScale bridges focal-plane length with sky angle. scale is either
// angle/length (arcsec/mm) or length/angle (mm/arcsec).
func PlateScale(scale units.Quantity) (equivalency.Equivalency, error) {
	radPerM := units.Radian.Div(units.Meter)

	var v float64
	switch {
	case scale.Unit.IsEquivalent(radPerM):
		v, _ = scale.In(radPerM)
	case scale.Unit.IsEquivalent(radPerM.Inverse()):
		mPerRad, _ := scale.In(radPerM.Inverse())
		v = 1 / mPerRad
	default:
		return equivalency.Equivalency{}, invalid(namePlateScale, "platescale",
			"%s must be angle/distance or distance/angle", scale)
	}
	if !positive(v) {
		return equivalency.Equivalency{}, invalid(namePlateScale, "platescale", "%s must be positive and finite", scale)
	}
	p := plateConfig{radPerM: v}

	return equivalency.New(namePlateScale, map[string]any{"platescale": scale},
		equivalency.NewPair(units.Meter, units.Radian, p.toAngle, p.toLength),
	), nil
}
