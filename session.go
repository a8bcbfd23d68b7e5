// SPDX-License-Identifier: MIT
// Package: lvunits
//
// session.go — a Stack and the Resolver reading it, owned together.

package lvunits

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/resolver"
	"github.com/katalvlaran/lvunits/scope"
	"github.com/katalvlaran/lvunits/units"
)

// Session is the explicit context object for conversions: one scope stack and
// one resolver bound to it.
type Session struct {
	stack *scope.Stack
	res   *resolver.Resolver
}

type sessionConfig struct {
	log     logrus.FieldLogger
	obs     resolver.Observer
	enabled []equivalency.Equivalency
}

// Option configures a Session.
type Option func(*sessionConfig)

// WithLogger sets the logger for both stack and resolver. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("lvunits: WithLogger(nil)")
	}

	return func(c *sessionConfig) { c.log = l }
}

// WithObserver reports every resolution to o. Panics on nil.
func WithObserver(o resolver.Observer) Option {
	if o == nil {
		panic("lvunits: WithObserver(nil)")
	}

	return func(c *sessionConfig) { c.obs = o }
}

// WithEnabled enables eqs persistently from the start.
func WithEnabled(eqs ...equivalency.Equivalency) Option {
	return func(c *sessionConfig) { c.enabled = append(c.enabled, eqs...) }
}

// NewSession returns a Session with an empty stack unless WithEnabled is given.
func NewSession(opts ...Option) *Session {
	cfg := sessionConfig{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	st := scope.NewStack(scope.WithLogger(cfg.log), scope.WithEnabled(cfg.enabled...))
	ropts := []resolver.Option{resolver.WithStack(st), resolver.WithLogger(cfg.log)}
	if cfg.obs != nil {
		ropts = append(ropts, resolver.WithObserver(cfg.obs))
	}

	return &Session{stack: st, res: resolver.New(ropts...)}
}

// Stack exposes the session's scope stack.
func (s *Session) Stack() *scope.Stack { return s.stack }

// Resolver exposes the session's resolver.
func (s *Session) Resolver() *resolver.Resolver { return s.res }

// Convert converts v from → to; explicit equivalencies are tried before
// enabled ones.
func (s *Session) Convert(v float64, from, to units.Unit, explicit ...equivalency.Equivalency) (float64, error) {
	return s.res.Convert(v, from, to, explicit...)
}

// ConvertQuantity converts q into to.
func (s *Session) ConvertQuantity(q units.Quantity, to units.Unit, explicit ...equivalency.Equivalency) (units.Quantity, error) {
	return s.res.ConvertQuantity(q, to, explicit...)
}

// With runs fn with eq enabled and disables it on every exit path.
func (s *Session) With(eq equivalency.Equivalency, fn func() error) error {
	return s.stack.Do(eq, fn)
}

// Enable adds eqs to the persistent layer.
func (s *Session) Enable(eqs ...equivalency.Equivalency) { s.stack.Enable(eqs...) }

// SetEnabled replaces the persistent layer; restore puts the old one back.
func (s *Session) SetEnabled(eqs ...equivalency.Equivalency) (restore func()) {
	return s.stack.SetEnabled(eqs...)
}

// EquivalentUnits lists catalog units reachable from u.
func (s *Session) EquivalentUnits(u units.Unit, explicit ...equivalency.Equivalency) []units.Unit {
	return s.res.EquivalentUnits(u, explicit...)
}
