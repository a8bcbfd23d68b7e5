// SPDX-License-Identifier: MIT

// Package units is the dimensional-algebra collaborator of lvunits.
//
// 🚀 What is it?
//
//	A deliberately small unit model: every Unit is a scale factor times a
//	product of integer powers of named base symbols.
//
//	  km/s   = 1000 · m¹ s⁻¹
//	  Jy     = 1e-26 · kg¹ s⁻²      (W m⁻² Hz⁻¹ decomposed)
//	  arcsec = π/648000 · rad¹
//
//	Two units are dimensionally equivalent iff their base-power maps are equal;
//	the scale factor between equivalent units is the ratio of their scales.
//
// ✨ Answers the three questions the equivalency engine asks:
//   - IsEquivalent(a, b)   — "are these two units dimensionally equivalent?"
//   - a.ScaleTo(b)         — "what is the scale factor between them?"
//   - a.Decompose()        — "which base symbols, at which powers?"
//
// Bases:
//
//	m kg s A K mol cd           SI
//	rad                         plane angle (sr = rad²)
//	pix ph beam littleh dex     astronomy / function units kept irreducible
//	deg_C deg_F deg_R           offset temperature scales (irreducible on purpose:
//	                            they cannot be reached by multiplication)
//
// Out of scope: offsets, rational exponents, a full unit grammar. Parse accepts
// only products, quotients and integer powers of catalog names.
package units
