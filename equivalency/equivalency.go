// SPDX-License-Identifier: MIT
// Package: lvunits/equivalency
//
// equivalency.go — Equivalency value type and composition.

package equivalency

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// CustomName names equivalencies built from bare pair lists.
const CustomName = "custom"

// Equivalency is an ordered, named list of pairs plus the parameters used to
// build it. The zero value is the empty equivalency.
type Equivalency struct {
	names  []string
	kwargs map[string]any
	pairs  []Pair
}

// New copies its inputs, so later mutation of kwargs by the caller has no effect.
func New(name string, kwargs map[string]any, pairs ...Pair) Equivalency {
	return Equivalency{
		names:  []string{name},
		kwargs: maps.Clone(kwargs),
		pairs:  slices.Clone(pairs),
	}
}

// Custom wraps user-supplied pairs under CustomName.
func Custom(pairs ...Pair) Equivalency {
	return New(CustomName, nil, pairs...)
}

// Add returns e followed by others. Pairs are concatenated in order, names
// are appended, kwargs are merged with later keys overriding earlier ones.
// Neither input is modified.
func (e Equivalency) Add(others ...Equivalency) Equivalency {
	out := Equivalency{
		names: slices.Clone(e.names),
		pairs: slices.Clone(e.pairs),
	}
	if len(e.kwargs) > 0 {
		out.kwargs = maps.Clone(e.kwargs)
	}
	for _, o := range others {
		out.names = append(out.names, o.names...)
		out.pairs = append(out.pairs, o.pairs...)
		if len(o.kwargs) == 0 {
			continue
		}
		if out.kwargs == nil {
			out.kwargs = make(map[string]any, len(o.kwargs))
		}
		maps.Copy(out.kwargs, o.kwargs)
	}

	return out
}

// Compose folds eqs left to right; Compose() is the empty equivalency.
func Compose(eqs ...Equivalency) Equivalency {
	return Equivalency{}.Add(eqs...)
}

// Pairs returns a copy of the pair list in resolution order.
func (e Equivalency) Pairs() []Pair { return slices.Clone(e.pairs) }

// Len returns the number of pairs.
func (e Equivalency) Len() int { return len(e.pairs) }

// IsEmpty reports whether e carries no pairs.
func (e Equivalency) IsEmpty() bool { return len(e.pairs) == 0 }

// Name joins the component names with "+", e.g. "spectral+temperature".
func (e Equivalency) Name() string { return strings.Join(e.names, "+") }

// Names returns the component names in composition order.
func (e Equivalency) Names() []string { return slices.Clone(e.names) }

// Kwargs returns a copy of the construction parameters.
func (e Equivalency) Kwargs() map[string]any { return maps.Clone(e.kwargs) }

// Equal reports whether e and o were built by the same factories with the
// same parameters. Transforms are not compared (functions have no equality).
func (e Equivalency) Equal(o Equivalency) bool {
	if !slices.Equal(e.names, o.names) || len(e.pairs) != len(o.pairs) {
		return false
	}
	if len(e.kwargs) == 0 && len(o.kwargs) == 0 {
		return true
	}

	return reflect.DeepEqual(e.kwargs, o.kwargs)
}

// String renders the name and pair count, e.g. "spectral(10 pairs)".
func (e Equivalency) String() string {
	name := e.Name()
	if name == "" {
		name = "<empty>"
	}
	if len(e.pairs) == 1 {
		return name + "(1 pair)"
	}

	return name + "(" + strconv.Itoa(len(e.pairs)) + " pairs)"
}
