// SPDX-License-Identifier: MIT
// Package: lvunits/factory
//
// registry.go — name → builder lookup for configuration-driven callers.
//
// Contract:
//   • Builders take a flat Params; a missing required quantity is an
//     InvalidParameterError with Reason "required".
//   • Register panics on an empty name or nil builder (programmer error).
//   • A Registry is safe for concurrent use.

package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/lvunits/equivalency"
	"github.com/katalvlaran/lvunits/units"
)

// Params carries every parameter any built-in factory accepts. Zero
// quantities mean "not given".
type Params struct {
	Rest       units.Quantity
	Wav        units.Quantity
	Frequency  units.Quantity
	BeamArea   units.Quantity
	PixelScale units.Quantity
	PlateScale units.Quantity
	H0         units.Quantity
	Tcmb       units.Quantity
	Cosmology  string
}

// Builder produces an equivalency from Params.
type Builder func(Params) (equivalency.Equivalency, error)

// Entry describes a registered factory.
type Entry struct {
	Name    string   `json:"name"`
	Params  []string `json:"params,omitempty"`
	Summary string   `json:"summary"`
}

type registered struct {
	entry Entry
	build Builder
}

// Registry maps factory names to builders.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registered
}

// NewRegistry returns a registry holding every built-in factory.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]registered)}
	for _, b := range builtins() {
		r.Register(b.entry, b.build)
	}

	return r
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the shared built-in registry.
func Default() *Registry { return defaultRegistry() }

// Names lists the built-in factory names, sorted.
func Names() []string { return Default().Names() }

// Build runs the built-in factory called name.
func Build(name string, p Params) (equivalency.Equivalency, error) { return Default().Build(name, p) }

// Register adds or replaces a builder.
func (r *Registry) Register(e Entry, b Builder) {
	if e.Name == "" || b == nil {
		panic("factory: Register: empty name or nil builder")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Name] = registered{entry: e, build: b}
}

// Build runs the builder registered under name.
func (r *Registry) Build(name string, p Params) (equivalency.Equivalency, error) {
	r.mu.RLock()
	reg, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return equivalency.Equivalency{}, fmt.Errorf("%w: %q", ErrUnknownFactory, name)
	}

	return reg.build(p)
}

// BuildAll builds every name with the same Params and composes the results
// in order.
func (r *Registry) BuildAll(names []string, p Params) (equivalency.Equivalency, error) {
	eqs := make([]equivalency.Equivalency, 0, len(names))
	for _, n := range names {
		eq, err := r.Build(n, p)
		if err != nil {
			return equivalency.Equivalency{}, err
		}
		eqs = append(eqs, eq)
	}

	return equivalency.Compose(eqs...), nil
}

// Names lists registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for n := range r.entries {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Entries lists registered entries sorted by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		if reg, ok := r.entries[n]; ok {
			out = append(out, reg.entry)
		}
	}

	return out
}

func required(factory, param string, q units.Quantity) error {
	if q.IsZero() {
		return invalid(factory, param, "required")
	}

	return nil
}

// cosmologyOptions turns the optional cosmology fields of p into options.
// explicit is the factory's own override (Tcmb or H0) with its option ctor.
func (p Params) cosmologyOptions(factory string, explicit units.Quantity, with func(units.Quantity) Option) ([]Option, error) {
	var opts []Option
	if !explicit.IsZero() {
		opts = append(opts, with(explicit))
	}
	if p.Cosmology != "" {
		c, ok := LookupCosmology(p.Cosmology)
		if !ok {
			return nil, invalid(factory, "cosmology", "unknown cosmology %q", p.Cosmology)
		}
		opts = append(opts, WithCosmology(c))
	}

	return opts, nil
}

func fixed(eq func() equivalency.Equivalency) Builder {
	return func(Params) (equivalency.Equivalency, error) { return eq(), nil }
}

func withRest(name string, f func(units.Quantity) (equivalency.Equivalency, error)) Builder {
	return func(p Params) (equivalency.Equivalency, error) {
		if err := required(name, "rest", p.Rest); err != nil {
			return equivalency.Equivalency{}, err
		}

		return f(p.Rest)
	}
}

func builtins() []registered {
	return []registered{
		{Entry{nameSpectral, nil, "wavelength, frequency, energy and wavenumber"}, fixed(Spectral)},
		{Entry{nameSpectralDensity, []string{"wav"}, "flux, luminosity and surface brightness densities per Å, per Hz and in photons"},
			func(p Params) (equivalency.Equivalency, error) {
				if err := required(nameSpectralDensity, "wav", p.Wav); err != nil {
					return equivalency.Equivalency{}, err
				}

				return SpectralDensity(p.Wav)
			}},
		{Entry{nameDopplerRadio, []string{"rest"}, "radio velocity convention"}, withRest(nameDopplerRadio, DopplerRadio)},
		{Entry{nameDopplerOptical, []string{"rest"}, "optical velocity convention"}, withRest(nameDopplerOptical, DopplerOptical)},
		{Entry{nameDopplerRelativistic, []string{"rest"}, "relativistic velocity convention"}, withRest(nameDopplerRelativistic, DopplerRelativistic)},
		{Entry{nameParallax, nil, "parallax angle and distance"}, fixed(Parallax)},
		{Entry{nameTemperature, nil, "K, deg_C, deg_F and deg_R"}, fixed(Temperature)},
		{Entry{nameTemperatureEnergy, nil, "temperature and thermal energy"}, fixed(TemperatureEnergy)},
		{Entry{nameBrightnessTemperature, []string{"frequency", "beam_area?"}, "Jy/sr (or Jy/beam) and Rayleigh-Jeans brightness temperature"},
			func(p Params) (equivalency.Equivalency, error) {
				if err := required(nameBrightnessTemperature, "frequency", p.Frequency); err != nil {
					return equivalency.Equivalency{}, err
				}
				var opts []Option
				if !p.BeamArea.IsZero() {
					opts = append(opts, WithBeamArea(p.BeamArea))
				}

				return BrightnessTemperature(p.Frequency, opts...)
			}},
		{Entry{nameBeamAngularArea, []string{"beam_area"}, "beam and solid angle"},
			func(p Params) (equivalency.Equivalency, error) {
				if err := required(nameBeamAngularArea, "beam_area", p.BeamArea); err != nil {
					return equivalency.Equivalency{}, err
				}

				return BeamAngularArea(p.BeamArea)
			}},
		{Entry{nameThermodynamicTemperature, []string{"frequency", "T_cmb?", "cosmology?"}, "Jy/sr and CMB thermodynamic temperature"},
			func(p Params) (equivalency.Equivalency, error) {
				if err := required(nameThermodynamicTemperature, "frequency", p.Frequency); err != nil {
					return equivalency.Equivalency{}, err
				}
				opts, err := p.cosmologyOptions(nameThermodynamicTemperature, p.Tcmb, WithTcmb)
				if err != nil {
					return equivalency.Equivalency{}, err
				}

				return ThermodynamicTemperature(p.Frequency, opts...)
			}},
		{Entry{namePixelScale, []string{"pixscale"}, "pixels and physical units"},
			func(p Params) (equivalency.Equivalency, error) {
				if err := required(namePixelScale, "pixscale", p.PixelScale); err != nil {
					return equivalency.Equivalency{}, err
				}

				return PixelScale(p.PixelScale)
			}},
		{Entry{namePlateScale, []string{"platescale"}, "focal-plane length and sky angle"},
			func(p Params) (equivalency.Equivalency, error) {
				if err := required(namePlateScale, "platescale", p.PlateScale); err != nil {
					return equivalency.Equivalency{}, err
				}

				return PlateScale(p.PlateScale)
			}},
		{Entry{nameWithH0, []string{"H0?", "cosmology?"}, "little-h and physical units"},
			func(p Params) (equivalency.Equivalency, error) {
				opts, err := p.cosmologyOptions(nameWithH0, p.H0, WithHubble)
				if err != nil {
					return equivalency.Equivalency{}, err
				}

				return WithH0(opts...)
			}},
		{Entry{nameMassEnergy, nil, "mass and energy"}, fixed(MassEnergy)},
		{Entry{nameMolarMassAMU, nil, "g/mol and atomic mass units"}, fixed(MolarMassAMU)},
		{Entry{nameLogarithmic, nil, "dimensionless and dex"}, fixed(Logarithmic)},
		{Entry{nameDimensionlessAngles, nil, "radians and dimensionless at any power"}, fixed(DimensionlessAngles)},
	}
}
