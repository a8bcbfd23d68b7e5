// SPDX-License-Identifier: MIT
// Package: lvunits/equivalency
//
// errors.go — sentinel errors and their typed carriers.
//
// Error policy:
//   - Sentinels are matched with errors.Is; typed errors with errors.As.
//   - Every typed error Unwraps to exactly one sentinel.
//   - Nothing here is recovered internally; the resolver surfaces all three
//     kinds to the caller of Convert.

package equivalency

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidParameter indicates a factory received a parameter with the
	// wrong dimensionality or a disallowed combination of parameters.
	ErrInvalidParameter = errors.New("equivalency: invalid parameter")

	// ErrUnconvertible indicates that neither a direct nor an
	// equivalency-mediated conversion exists between two units.
	ErrUnconvertible = errors.New("equivalency: units are not convertible")

	// ErrNumericDomain indicates a transform was evaluated outside its
	// mathematical domain and produced NaN.
	ErrNumericDomain = errors.New("equivalency: numeric domain violated")
)

// InvalidParameterError reports which factory parameter was rejected.
type InvalidParameterError struct {
	Factory string
	Param   string
	Reason  string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%v: %s(%s): %s", ErrInvalidParameter, e.Factory, e.Param, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// UnconvertibleError names both units and how many candidate pairs were scanned.
type UnconvertibleError struct {
	From       string
	To         string
	Candidates int
}

func (e *UnconvertibleError) Error() string {
	return fmt.Sprintf("%v: %q to %q: no direct or equivalency-mediated path (%d candidate pairs scanned)",
		ErrUnconvertible, e.From, e.To, e.Candidates)
}

func (e *UnconvertibleError) Unwrap() error { return ErrUnconvertible }

// NumericDomainError names the equivalency and pair whose transform failed.
type NumericDomainError struct {
	Equivalency string
	Pair        string
	Input       float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("%v: %s [%s] undefined for input %s",
		ErrNumericDomain, e.Equivalency, e.Pair, strconv.FormatFloat(e.Input, 'g', -1, 64))
}

func (e *NumericDomainError) Unwrap() error { return ErrNumericDomain }
