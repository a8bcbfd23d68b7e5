// SPDX-License-Identifier: MIT
// Package: lvunits/resolver
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on nil arguments; resolution never panics.
//   • Without WithStack a Resolver owns a private empty stack.

package resolver

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvunits/scope"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithStack makes the resolver consult st after explicit equivalencies.
func WithStack(st *scope.Stack) Option {
	if st == nil {
		panic("resolver: WithStack(nil)")
	}

	return func(r *Resolver) { r.stack = st }
}

// WithLogger routes resolution tracing (Debug level) to l.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("resolver: WithLogger(nil)")
	}

	return func(r *Resolver) { r.log = l }
}

// WithObserver reports the outcome of every resolution to o.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("resolver: WithObserver(nil)")
	}

	return func(r *Resolver) { r.obs = o }
}
