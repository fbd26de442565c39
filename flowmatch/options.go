// SPDX-License-Identifier: MIT

// Package flowmatch: functional configuration for the Matcher.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (pure setters; validation happens once, in New),
//   - gatherOptions / validateOptions helpers (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, randomness only through the
//     configured source.
//   - Safe by construction: every invalid configuration is rejected by New
//     with a sentinel error, never at first use.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package flowmatch

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDevice is the execution target when none is configured.
	DefaultDevice = DeviceCPU

	// DefaultSigma is the Gaussian dispersion of the probability path.
	// Zero selects the deterministic (noiseless) path; noise injection
	// then contributes exactly nothing.
	DefaultSigma = 0.0

	// DefaultEmbDim is the per-pair feature dimensionality. It documents
	// the expected trailing axis; shapes are what the tensors say.
	DefaultEmbDim = 1

	// DefaultPadValue mirrors the upstream MATRIX_PAD sentinel marking
	// absent nodes. The sentinel's origin is external; override it with
	// WithPadValue when the producer uses a different constant.
	DefaultPadValue = -1.0

	// MaskFill is written at every masked-out pairwise position instead
	// of exact zero, so invalid pairs stay distinguishable downstream
	// from valid-but-small signal.
	MaskFill = 1e-19
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; New accepts ...Option
// and resolves them via gatherOptions.
type Options struct {
	device   Device      // DefaultDevice
	sigma    float64     // DefaultSigma; finite, >= 0
	embDim   int         // DefaultEmbDim; > 0
	padValue float64     // DefaultPadValue; finite
	src      rand.Source // nil => process-global math/rand source
}

// ---------- Constructors (WithX) ----------

// WithDevice selects the execution device identifier.
//
// Inputs:
//   - d: device id; only DeviceCPU validates in this build.
//
// Errors:
//   - Deferred to New (ErrUnknownDevice).
//
// Complexity: O(1).
func WithDevice(d Device) Option {
	return func(o *Options) { o.device = d }
}

// WithSigma sets the Gaussian noise scale of the probability path.
//
// Behavior highlights:
//   - Sigma 0 keeps the path deterministic: the noise term vanishes exactly.
//
// Inputs:
//   - sigma: finite, non-negative dispersion.
//
// Errors:
//   - Deferred to New (ErrBadSigma on negative or non-finite values).
//
// Complexity: O(1).
//
// AI-Hints:
//   - Small sigmas (≤ 0.1) are typical; the masked loss sees the noise
//     only at valid node pairs.
func WithSigma(sigma float64) Option {
	return func(o *Options) { o.sigma = sigma }
}

// WithEmbDim declares the per-pair feature dimensionality.
//
// Behavior highlights:
//   - Documentation/shape expectation only: operations trust the tensors'
//     actual trailing axis and never cross-check it against embDim.
//
// Errors:
//   - Deferred to New (ErrBadEmbDim when <= 0).
//
// Complexity: O(1).
func WithEmbDim(dim int) Option {
	return func(o *Options) { o.embDim = dim }
}

// WithPadValue overrides the pad sentinel marking absent nodes.
//
// Behavior highlights:
//   - Node masks compare feature 0 of each row against this value with
//     exact equality; the upstream producer guarantees the sentinel can
//     never collide with a legitimate feature value.
//
// Errors:
//   - Deferred to New (ErrBadPadValue on NaN or ±Inf).
//
// Complexity: O(1).
func WithPadValue(pad float64) Option {
	return func(o *Options) { o.padValue = pad }
}

// WithRandSource injects the random source used for noise and time draws.
//
// Behavior highlights:
//   - nil (the default) selects the process-global math/rand source,
//     which is safe under concurrent callers.
//   - A non-nil source makes every draw reproducible; serializing
//     concurrent use of that source is then the owner's responsibility.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Use rand.NewSource(seed) in tests to pin noise bit-for-bit.
func WithRandSource(src rand.Source) Option {
	return func(o *Options) { o.src = src }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Stage 1: start from documented defaults (single source of truth).
// Stage 2: apply setters in order; last-writer-wins semantics.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		device:   DefaultDevice,
		sigma:    DefaultSigma,
		embDim:   DefaultEmbDim,
		padValue: DefaultPadValue,
		src:      nil,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// validateOptions rejects every invalid configuration in one place,
// so New fails at construction time and never at first use.
// Sequence: device → sigma → embDim → padValue.
// Complexity: O(1).
func validateOptions(o Options) error {
	if err := o.device.Validate(); err != nil {
		return err
	}
	if o.sigma < 0 || math.IsNaN(o.sigma) || math.IsInf(o.sigma, 0) {
		return ErrBadSigma
	}
	if o.embDim <= 0 {
		return ErrBadEmbDim
	}
	if math.IsNaN(o.padValue) || math.IsInf(o.padValue, 0) {
		return ErrBadPadValue
	}

	return nil
}
