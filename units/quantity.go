// SPDX-License-Identifier: MIT
// Package: lvunits/units
//
// quantity.go — a scalar value paired with a unit. Quantities are the
// parameters of equivalency factories (rest frequency, beam area, H0, ...).

package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is Value·Unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q is shorthand for Quantity{Value: v, Unit: u}.
func Q(v float64, u Unit) Quantity { return Quantity{Value: v, Unit: u} }

// ParseQuantity reads "<number> <unit expression>", e.g. "115.27 GHz" or
// "100 pix/inch". A bare number is dimensionless.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	fields := strings.SplitN(s, " ", 2)
	if len(fields) == 0 || fields[0] == "" {
		return Quantity{}, fmt.Errorf("%w: empty quantity", ErrSyntax)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q is not a number", ErrSyntax, fields[0])
	}
	u := Dimensionless
	if len(fields) == 2 {
		if u, err = Parse(fields[1]); err != nil {
			return Quantity{}, err
		}
	}

	return Quantity{Value: v, Unit: u}, nil
}

// IsZero reports whether q was never set.
func (q Quantity) IsZero() bool {
	return q.Value == 0 && q.Unit.scale == 0 && q.Unit.dims == nil && q.Unit.name == ""
}

// AsUnit folds the value into the unit: Q(100, pix/inch).AsUnit() is the
// unit "100 pix/inch". Factories use it to build reference units.
func (q Quantity) AsUnit() Unit {
	return q.Unit.Scaled(q.Value).Named(q.String())
}

// In returns the value expressed in u by pure scaling.
// Fails with ErrIncompatible when dimensions differ.
func (q Quantity) In(u Unit) (float64, error) {
	f, err := q.Unit.ScaleTo(u)
	if err != nil {
		return 0, err
	}

	return q.Value * f, nil
}

// String renders "<value> <unit>".
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit.IsDimensionless() && q.Unit.Scale() == 1 {
		return v
	}

	return v + " " + q.Unit.String()
}
