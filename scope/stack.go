// SPDX-License-Identifier: MIT
// Package: lvunits/scope
//
// stack.go — persistent + scoped equivalency frames.

package scope

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvunits/equivalency"
)

// Stack is an ordered set of enabled equivalencies. The zero value is not
// usable; construct with NewStack.
type Stack struct {
	persistent []equivalency.Equivalency
	scoped     []equivalency.Equivalency
	log        logrus.FieldLogger
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger routes push/pop tracing to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("scope: WithLogger(nil)")
	}

	return func(s *Stack) { s.log = l }
}

// WithEnabled seeds the persistent layer.
func WithEnabled(eqs ...equivalency.Equivalency) Option {
	return func(s *Stack) { s.persistent = append(s.persistent, eqs...) }
}

// NewStack returns an empty stack with options applied in order.
func NewStack(opts ...Option) *Stack {
	s := &Stack{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Push enables eq until the returned pop function is called. pop restores the
// scoped layer to exactly the depth it had before Push; calling it again is a
// no-op. Pops must be nested (LIFO): popping an outer frame first also drops
// every frame pushed after it.
func (s *Stack) Push(eq equivalency.Equivalency) (pop func()) {
	depth := len(s.scoped)
	s.scoped = append(s.scoped, eq)
	s.log.WithFields(logrus.Fields{"equivalency": eq.Name(), "depth": depth + 1}).Trace("scope push")

	done := false

	return func() {
		if done {
			return
		}
		done = true
		if len(s.scoped) > depth {
			clear(s.scoped[depth:])
			s.scoped = s.scoped[:depth]
		}
		s.log.WithFields(logrus.Fields{"equivalency": eq.Name(), "depth": depth}).Trace("scope pop")
	}
}

// Do runs fn with eq enabled. The frame is removed before Do returns, including
// when fn returns an error or panics; the panic continues to propagate.
func (s *Stack) Do(eq equivalency.Equivalency, fn func() error) error {
	pop := s.Push(eq)
	defer pop()

	return fn()
}

// Enable appends eqs to the persistent layer.
func (s *Stack) Enable(eqs ...equivalency.Equivalency) {
	s.persistent = append(s.persistent, eqs...)
	for _, eq := range eqs {
		s.log.WithField("equivalency", eq.Name()).Debug("equivalency enabled")
	}
}

// Disable removes every persistent frame whose Name equals name and reports
// whether any was removed. Scoped frames are untouched.
func (s *Stack) Disable(name string) bool {
	before := len(s.persistent)
	s.persistent = slices.DeleteFunc(s.persistent, func(e equivalency.Equivalency) bool {
		return e.Name() == name
	})
	removed := len(s.persistent) != before
	if removed {
		s.log.WithField("equivalency", name).Debug("equivalency disabled")
	}

	return removed
}

// SetEnabled replaces the persistent layer with eqs and returns a function that
// puts the previous layer back, so it can also be used as a block:
//
//	defer st.SetEnabled(factory.DimensionlessAngles())()
func (s *Stack) SetEnabled(eqs ...equivalency.Equivalency) (restore func()) {
	prev := s.persistent
	s.persistent = slices.Clone(eqs)

	return func() { s.persistent = prev }
}

// Reset clears both layers.
func (s *Stack) Reset() {
	s.persistent = nil
	clear(s.scoped)
	s.scoped = s.scoped[:0]
}

// Frames returns the effective frames: persistent then scoped, outermost first.
// The slice is a snapshot; later Push/Enable calls do not affect it.
func (s *Stack) Frames() []equivalency.Equivalency {
	out := make([]equivalency.Equivalency, 0, len(s.persistent)+len(s.scoped))
	out = append(out, s.persistent...)

	return append(out, s.scoped...)
}

// Depth returns the number of scoped frames.
func (s *Stack) Depth() int { return len(s.scoped) }

// Enabled returns the persistent layer.
func (s *Stack) Enabled() []equivalency.Equivalency { return slices.Clone(s.persistent) }
