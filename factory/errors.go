// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// errors.go — sentinel errors for the registry plus the helper that builds
// typed parameter errors.
//
// Error policy:
//   • Parameter problems are *equivalency.InvalidParameterError, so callers
//     branch with errors.Is(err, equivalency.ErrInvalidParameter).
//   • Registry lookups fail with ErrUnknownFactory wrapped with the name.

package factory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvunits/equivalency"
)

// ErrUnknownFactory indicates Build was asked for a name nobody registered.
var ErrUnknownFactory = errors.New("factory: unknown equivalency")

// invalid builds the typed parameter error for factory/param.
func invalid(factory, param, format string, args ...any) error {
	return &equivalency.InvalidParameterError{
		Factory: factory,
		Param:   param,
		Reason:  fmt.Sprintf(format, args...),
	}
}
