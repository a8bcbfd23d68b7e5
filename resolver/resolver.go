// SPDX-License-Identifier: MIT
// Package: lvunits/resolver
//
// resolver.go — Resolver and its conversion entry points.

package resolver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/scope"
	"github.com/katalvlaran/lvunits/units"
)

// Path classifies how a resolution ended.
type Path string

const (
	PathDirect      Path = "direct"
	PathEquivalency Path = "equivalency"
	PathFailed      Path = "failed"
)

// Observer is told the outcome of each resolution. equivalency is the name of
// the contributing equivalency, empty for direct and failed paths.
type Observer interface {
	Observe(path Path, equivalency string)
}

// Converter converts one value in the resolved source unit to the target unit.
type Converter func(float64) (float64, error)

// Resolver converts values between units. It holds no per-call state and may
// be reused; it is as safe for concurrent use as its stack is.
type Resolver struct {
	stack *scope.Stack
	log   logrus.FieldLogger
	obs   Observer
}

// New returns a Resolver with options applied in order.
func New(opts ...Option) *Resolver {
	r := &Resolver{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(r)
	}
	if r.stack == nil {
		r.stack = scope.NewStack(scope.WithLogger(r.log))
	}

	return r
}

// Stack returns the stack consulted after explicit equivalencies.
func (r *Resolver) Stack() *scope.Stack { return r.stack }

// Converter resolves from → to once. The stack is snapshotted now; later
// pushes do not affect the returned Converter.
func (r *Resolver) Converter(from, to units.Unit, explicit ...equivalency.Equivalency) (Converter, error) {
	log := r.log.WithFields(logrus.Fields{"from": from.String(), "to": to.String()})

	if f, err := from.ScaleTo(to); err == nil {
		log.Debug("direct conversion")
		r.observe(PathDirect, "")

		return func(v float64) (float64, error) { return v * f, nil }, nil
	}

	cands := r.candidates(explicit)
	for _, c := range cands {
		orient, fn, ok := match(c.pair, from, to)
		if !ok {
			continue
		}
		log.WithFields(logrus.Fields{
			"equivalency": c.owner,
			"orientation": orient,
			"pair":        c.pair.String(),
		}).Debug("equivalency conversion")
		r.observe(PathEquivalency, c.owner)

		return c.guarded(fn), nil
	}

	log.WithField("candidates", len(cands)).Debug("no conversion path")
	r.observe(PathFailed, "")

	return nil, &equivalency.UnconvertibleError{From: from.String(), To: to.String(), Candidates: len(cands)}
}

// Convert converts a single value.
func (r *Resolver) Convert(v float64, from, to units.Unit, explicit ...equivalency.Equivalency) (float64, error) {
	conv, err := r.Converter(from, to, explicit...)
	if err != nil {
		return 0, err
	}

	return conv(v)
}

// ConvertAll converts vs element-wise with a single resolution. The first
// domain error aborts the call and no partial result is returned.
func (r *Resolver) ConvertAll(vs []float64, from, to units.Unit, explicit ...equivalency.Equivalency) ([]float64, error) {
	conv, err := r.Converter(from, to, explicit...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		x, err := conv(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = x
	}

	return out, nil
}

// ConvertQuantity converts q into unit to.
func (r *Resolver) ConvertQuantity(q units.Quantity, to units.Unit, explicit ...equivalency.Equivalency) (units.Quantity, error) {
	x, err := r.Convert(q.Value, q.Unit, to, explicit...)
	if err != nil {
		return units.Quantity{}, err
	}

	return units.Q(x, to), nil
}

// EquivalentUnits lists the catalog units that u converts to, directly or
// through a single candidate pair, in catalog order. Nothing is observed.
func (r *Resolver) EquivalentUnits(u units.Unit, explicit ...equivalency.Equivalency) []units.Unit {
	cands := r.candidates(explicit)
	var out []units.Unit
	for _, c := range units.Catalog() {
		if u.IsEquivalent(c) {
			out = append(out, c)
			continue
		}
		for _, cand := range cands {
			if _, _, ok := match(cand.pair, u, c); ok {
				out = append(out, c)
				break
			}
		}
	}

	return out
}

// candidates flattens explicit equivalencies then stack frames into the scan order.
func (r *Resolver) candidates(explicit []equivalency.Equivalency) []candidate {
	frames := r.stack.Frames()
	n := 0
	for _, eq := range explicit {
		n += eq.Len()
	}
	for _, eq := range frames {
		n += eq.Len()
	}

	out := make([]candidate, 0, n)
	for _, group := range [][]equivalency.Equivalency{explicit, frames} {
		for _, eq := range group {
			owner := eq.Name()
			for _, p := range eq.Pairs() {
				out = append(out, candidate{owner: owner, pair: p})
			}
		}
	}

	return out
}

func (r *Resolver) observe(p Path, eq string) {
	if r.obs != nil {
		r.obs.Observe(p, eq)
	}
}
