// Package tensor: Dense is a concrete, row-major rank-N tensor,
// storing elements in a flat slice for performance and cache friendliness.
// The last axis is contiguous; strides are precomputed at construction.

package tensor

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a row-major tensor of float64 values.
// shape holds the per-axis dimensions, strides the per-axis flat-index
// steps, and data holds prod(shape) elements in row-major order.
type Dense struct {
	shape   []int     // per-axis dimensions, all > 0
	strides []int     // strides[k] = prod(shape[k+1:]); strides[rank-1] == 1
	data    []float64 // flat backing storage, length == prod(shape)
}

// NewDense creates a Dense tensor of the given shape initialized to zeros.
// Stage 1 (Validate): ensure rank >= 1 and every dimension > 0.
// Stage 2 (Prepare): compute strides and allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(prod(shape)) time and memory.
func NewDense(shape ...int) (*Dense, error) {
	// Validate rank and dimensions.
	if len(shape) == 0 {
		return nil, denseErrorf("New", ErrBadShape)
	}
	n := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, denseErrorf("New", ErrBadShape)
		}
		n *= dim
	}

	// Copy the shape so the caller's slice cannot alias internals.
	s := make([]int, len(shape))
	copy(s, shape)

	return &Dense{shape: s, strides: stridesOf(s), data: make([]float64, n)}, nil
}

// NewDenseFrom creates a Dense tensor of the given shape backed by a COPY
// of data. The data length must equal prod(shape).
// Complexity: O(prod(shape)) time and memory.
func NewDenseFrom(data []float64, shape ...int) (*Dense, error) {
	d, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(d.data) {
		return nil, denseErrorf("NewFrom", ErrBadData)
	}
	copy(d.data, data)

	return d, nil
}

// stridesOf computes row-major strides for a validated shape.
// strides[k] is the flat-index step of axis k; the last axis is contiguous.
func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	step := 1
	for k := len(shape) - 1; k >= 0; k-- {
		st[k] = step
		step *= shape[k]
	}

	return st
}

// Rank returns the number of axes.
// Complexity: O(1).
func (d *Dense) Rank() int {
	return len(d.shape)
}

// Shape returns a copy of the per-axis dimensions.
// Complexity: O(rank).
func (d *Dense) Shape() []int {
	s := make([]int, len(d.shape))
	copy(s, d.shape)

	return s
}

// Len returns the total number of elements, prod(shape).
// Complexity: O(1).
func (d *Dense) Len() int {
	return len(d.data)
}

// Raw returns the flat row-major backing slice as a mutable view.
// Mutations through Raw are visible in the tensor; kernels rely on this
// to hand contiguous runs to gonum/vek without copying.
// Complexity: O(1).
func (d *Dense) Raw() []float64 {
	return d.data
}

// offsetOf computes the flat index for an index tuple or returns ErrOutOfRange.
// Stage 1 (Validate): arity must equal rank; every index within its axis.
// Stage 2 (Execute): accumulate stride-weighted offset.
// Complexity: O(rank).
func (d *Dense) offsetOf(method string, idx []int) (int, error) {
	// Validate index arity against rank.
	if len(idx) != len(d.shape) {
		return 0, denseErrorf(method, ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		// Validate axis index.
		if i < 0 || i >= d.shape[k] {
			return 0, denseErrorf(method, ErrOutOfRange)
		}
		off += i * d.strides[k]
	}

	return off, nil
}

// At retrieves the element at the given index tuple.
// Stage 1 (Validate): bounds check via offsetOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(rank).
func (d *Dense) At(idx ...int) (float64, error) {
	off, err := d.offsetOf("At", idx)
	if err != nil {
		return 0, err
	}

	return d.data[off], nil
}

// Set assigns value v at the given index tuple.
// Stage 1 (Validate): bounds check via offsetOf.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(rank).
func (d *Dense) Set(v float64, idx ...int) error {
	off, err := d.offsetOf("Set", idx)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// Fill assigns v to every element.
// Complexity: O(prod(shape)).
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Clone returns a deep copy of the tensor.
// Complexity: O(prod(shape)) time and memory.
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{shape: d.Shape(), strides: stridesOf(d.shape), data: cp}
}

// SameShape reports whether o has exactly the same shape as d.
// Complexity: O(rank).
func (d *Dense) SameShape(o *Dense) bool {
	if o == nil || len(d.shape) != len(o.shape) {
		return false
	}
	for k := range d.shape {
		if d.shape[k] != o.shape[k] {
			return false
		}
	}

	return true
}
