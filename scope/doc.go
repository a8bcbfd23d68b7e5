// SPDX-License-Identifier: MIT

// Package scope holds the stack of currently enabled equivalencies.
//
// A Stack has two layers, consulted in this order:
//
//	persistent  Enable / Disable / SetEnabled / Reset
//	            session-wide defaults that stay until changed
//	scoped      Push / Do
//	            strictly nested LIFO frames; each is removed when its block
//	            exits, on success, on error and on panic
//
// Frames() is the effective list, outermost first. The resolver consults it
// after any explicitly passed equivalencies.
//
// Ownership and concurrency:
//
//	There is no package-level stack. Each Stack is an explicit object handed
//	to a resolver, and a Stack is NOT safe for concurrent mutation: give
//	every goroutine its own Stack, or serialise access yourself. Reads that
//	race with Push/Enable are undefined; this package does not hide that
//	behind a lock.
//
// Example:
//
//	st := scope.NewStack()
//	err := st.Do(factory.DimensionlessAngles(), func() error {
//		v, err := res.Convert(360, units.Degree, units.Dimensionless)
//		...
//	})
package scope
