// SPDX-License-Identifier: MIT
// Package: flowmatch
//
// Purpose:
//   - Implement the conditional probability path surface consumed by the
//     training loop: stochastic path sampling, the closed-form vector
//     field regression target, and the per-sample time draw.
//
// Determinism & Performance:
//   - Interpolation runs per contiguous feature run via gonum/floats
//     (ScaleTo + AddScaled), broadcasting t over every non-batch axis.
//   - ConditionalVectorField is a single SubTo pass; no masking, no noise.

package flowmatch

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tessellate-ml/graphflow/tensor"
)

// validatePathArgs ensures x0 and x1 form a valid batch pair for path
// sampling and that t aligns with the batch axis.
// Sequence: batch-matrix checks on x0 → shape equality → t length → t finite.
// Complexity: O(batch).
func validatePathArgs(op string, x0, x1 *tensor.Dense, t []float64) error {
	if err := validateBatchMatrix(op, x0); err != nil {
		return err
	}
	if x1 == nil {
		return matcherErrorf(op, ErrNilTensor)
	}
	if !x0.SameShape(x1) {
		return matcherErrorf(op, ErrShapeMismatch)
	}
	if len(t) != x0.Shape()[2] {
		return matcherErrorf(op, ErrBatchMismatch)
	}
	for _, tv := range t {
		if math.IsNaN(tv) || math.IsInf(tv, 0) {
			return matcherErrorf(op, ErrNonFiniteTime)
		}
	}

	return nil
}

// SampleConditionalPt draws a sample from the conditional probability
// path N(t·x1 + (1−t)·x0, sigma).
//
// Implementation:
//   - Stage 1 (Validate): x0/x1 rank-4 batch matrices of one shape;
//     len(t) equals the batch axis; every t finite. The only implicit
//     broadcast is t across the non-batch axes.
//   - Stage 2 (Interpolate): mu_t = t·x1 + (1−t)·x0 per contiguous
//     feature run (ScaleTo then AddScaled), t indexed by the run's
//     batch position.
//   - Stage 3 (Perturb): AddSymmetricNoise(mu_t) — masked, symmetric,
//     zero-centered noise scaled by sigma, applied identically
//     regardless of t.
//
// Guarantees:
//   - At t[b] == 0 the interpolation equals x0 for sample b before
//     noise injection; at t[b] == 1 it equals x1. With sigma 0 the
//     returned sample is exactly the interpolation.
//
// Inputs:
//   - x0, x1: source and target batches, shape (n, n, b, d).
//   - t: per-sample times, length b, values in [0, 1].
//
// Returns:
//   - xt: stochastic sample along the path, shape (n, n, b, d).
//
// Errors:
//   - ErrNilTensor, ErrBadRank, ErrNonSquare, ErrShapeMismatch,
//     ErrBatchMismatch, ErrNonFiniteTime, ErrDegenerateMask.
//
// Complexity: O(n²·b·d) time and space.
func (m *Matcher) SampleConditionalPt(x0, x1 *tensor.Dense, t []float64) (*tensor.Dense, error) {
	// Stage 1 (Validate).
	if err := validatePathArgs(opSamplePt, x0, x1, t); err != nil {
		return nil, err
	}
	shape := x0.Shape()
	bs, dd := shape[2], shape[3]

	// Stage 2 (Interpolate).
	mu, err := tensor.NewDense(shape...)
	if err != nil {
		return nil, matcherErrorf(opSamplePt, err)
	}
	r0 := x0.Raw()
	r1 := x1.Raw()
	rm := mu.Raw()
	total := len(rm)
	for run := 0; run < total; run += dd {
		tb := t[(run/dd)%bs] // batch position of this feature run
		dst := rm[run : run+dd]
		floats.ScaleTo(dst, 1-tb, r0[run:run+dd])
		floats.AddScaled(dst, tb, r1[run:run+dd])
	}

	// Stage 3 (Perturb).
	xt, err := m.AddSymmetricNoise(mu)
	if err != nil {
		return nil, matcherErrorf(opSamplePt, err)
	}

	return xt, nil
}

// ConditionalVectorField computes the conditional flow-matching target
// ut(x1|x0) = x1 − x0, elementwise. On this linear path family the
// target is time-invariant, so no t argument exists. No masking and no
// noise are applied here; restricting the regression to valid positions
// is the training loss's responsibility.
//
// Guarantees:
//   - Antisymmetric under argument exchange:
//     ConditionalVectorField(x0, x1) == −ConditionalVectorField(x1, x0).
//
// Errors:
//   - ErrNilTensor, ErrShapeMismatch.
//
// Complexity: O(len(x0)) time and space.
func (m *Matcher) ConditionalVectorField(x0, x1 *tensor.Dense) (*tensor.Dense, error) {
	// Stage 1 (Validate): any rank is acceptable; only shapes must agree.
	if x0 == nil || x1 == nil {
		return nil, matcherErrorf(opVecField, ErrNilTensor)
	}
	if !x0.SameShape(x1) {
		return nil, matcherErrorf(opVecField, ErrShapeMismatch)
	}

	// Stage 2 (Execute): ut = x1 − x0 in one pass.
	ut, err := tensor.NewDense(x0.Shape()...)
	if err != nil {
		return nil, matcherErrorf(opVecField, err)
	}
	if err = tensor.SubTo(ut, x1, x0); err != nil {
		return nil, matcherErrorf(opVecField, err)
	}

	return ut, nil
}

// SampleFlow draws one training pair in a single call: the stochastic
// sample xt along the conditional path and the regression target ut.
// Exactly one noise draw happens (inside SampleConditionalPt); the
// vector field is closed-form and consumes no randomness.
//
// Returns:
//   - xt: sample from N(t·x1 + (1−t)·x0, sigma).
//   - ut: x1 − x0.
//
// Errors: as SampleConditionalPt.
// Complexity: O(n²·b·d) time and space.
func (m *Matcher) SampleFlow(x0, x1 *tensor.Dense, t []float64) (xt, ut *tensor.Dense, err error) {
	if xt, err = m.SampleConditionalPt(x0, x1, t); err != nil {
		return nil, nil, matcherErrorf(opSampleFlw, err)
	}
	if ut, err = m.ConditionalVectorField(x0, x1); err != nil {
		return nil, nil, matcherErrorf(opSampleFlw, err)
	}

	return xt, ut, nil
}

// SampleT draws one uniform [0, 1) time value per batch element from the
// configured source — the draw the training loop performs when no
// explicit time schedule is supplied.
//
// Errors:
//   - ErrBadBatch when batch <= 0.
//
// Complexity: O(batch).
func (m *Matcher) SampleT(batch int) ([]float64, error) {
	if batch <= 0 {
		return nil, matcherErrorf(opSampleT, ErrBadBatch)
	}
	t := make([]float64, batch)
	for b := range t {
		t[b] = m.uniformFloat64()
	}

	return t, nil
}
