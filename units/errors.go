// SPDX-License-Identifier: MIT
// Package: lvunits/units
//
// errors.go — sentinel errors for the units package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package units

import "errors"

var (
	// ErrUnknownUnit indicates that a name is not present in the catalog.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrSyntax indicates a malformed unit or quantity expression.
	ErrSyntax = errors.New("units: invalid expression")

	// ErrIncompatible indicates that two units have different dimensions and
	// cannot be related by a pure scale factor.
	ErrIncompatible = errors.New("units: incompatible dimensions")
)
