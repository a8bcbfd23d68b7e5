// SPDX-License-Identifier: MIT
// Package: lvunits/units
//
// parse.go — minimal unit expressions over catalog names.
//
// Grammar (informal):
//
//	expr    := segment { "/" segment }
//	segment := factor { ("*" | " ") factor }
//	factor  := number | name [ ("^" | "**") int ]
//
// Every factor of the first segment multiplies; every factor of a later
// segment divides, so "erg / cm^2 s" reads as erg/(cm² s). Parentheses are
// not supported.

package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a Unit from an expression such as "km/s", "erg/cm^2/s/Hz" or
// "ph / cm**2 s AA". The empty string is Dimensionless.
func Parse(expr string) (Unit, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return Dimensionless, nil
	}
	if u, ok := Lookup(s); ok {
		return u, nil
	}

	s = strings.ReplaceAll(s, "**", "^")
	out := Dimensionless
	for i, seg := range strings.Split(s, "/") {
		factors := strings.FieldsFunc(seg, func(r rune) bool { return r == '*' || r == ' ' || r == '\t' })
		if len(factors) == 0 {
			return Unit{}, fmt.Errorf("%w: empty factor in %q", ErrSyntax, expr)
		}
		for _, f := range factors {
			u, err := parseFactor(f)
			if err != nil {
				return Unit{}, fmt.Errorf("parse %q: %w", expr, err)
			}
			if i == 0 {
				out = out.Mul(u)
			} else {
				out = out.Div(u)
			}
		}
	}

	return out.Named(strings.TrimSpace(expr)), nil
}

// MustParse is Parse that panics on error; for literal expressions only.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return u
}

func parseFactor(f string) (Unit, error) {
	if k, err := strconv.ParseFloat(f, 64); err == nil {
		if !(k > 0) {
			return Unit{}, fmt.Errorf("%w: non-positive scale %q", ErrSyntax, f)
		}

		return Dimensionless.Scaled(k), nil
	}

	name, exp := f, 1
	if i := strings.IndexByte(f, '^'); i >= 0 {
		n, err := strconv.Atoi(f[i+1:])
		if err != nil || n == 0 {
			return Unit{}, fmt.Errorf("%w: bad exponent in %q", ErrSyntax, f)
		}
		name, exp = f[:i], n
	}
	u, ok := Lookup(name)
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	if exp == 1 {
		return u, nil
	}

	return u.Pow(exp), nil
}
