// Package tensor_test contains unit tests for the Dense rank-N tensor.
package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-ml/graphflow/tensor"
)

// TestNewDenseBadShape ensures that NewDense rejects empty and non-positive shapes.
func TestNewDenseBadShape(t *testing.T) {
	_, err := tensor.NewDense()                   // zero-rank tensor is invalid
	require.ErrorIs(t, err, tensor.ErrBadShape)   // expect ErrBadShape

	_, err = tensor.NewDense(3, 0, 2)             // zero-length axis
	require.ErrorIs(t, err, tensor.ErrBadShape)   // expect ErrBadShape

	_, err = tensor.NewDense(2, -1)               // negative axis
	require.ErrorIs(t, err, tensor.ErrBadShape)   // expect ErrBadShape
}

// TestNewDenseFromBadData ensures that NewDenseFrom rejects a data slice
// whose length does not match the shape product.
func TestNewDenseFromBadData(t *testing.T) {
	_, err := tensor.NewDenseFrom([]float64{1, 2, 3}, 2, 2) // 3 values for a 4-element shape
	require.ErrorIs(t, err, tensor.ErrBadData)              // expect ErrBadData
}

// TestShapeRankLen verifies Rank, Shape and Len on a rank-4 tensor.
func TestShapeRankLen(t *testing.T) {
	d, err := tensor.NewDense(3, 3, 2, 4) // (n, n, b, d) layout
	require.NoError(t, err)               // creation must succeed

	require.Equal(t, 4, d.Rank())                  // four axes
	require.Equal(t, []int{3, 3, 2, 4}, d.Shape()) // dimensions round-trip
	require.Equal(t, 3*3*2*4, d.Len())             // element count is the product
}

// TestShapeCopyIsIndependent verifies that mutating the slice returned by
// Shape does not corrupt the tensor.
func TestShapeCopyIsIndependent(t *testing.T) {
	d, err := tensor.NewDense(2, 3)
	require.NoError(t, err)

	s := d.Shape()
	s[0] = 99                                // mutate the returned copy
	require.Equal(t, []int{2, 3}, d.Shape()) // internals unaffected
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on bad
// index arity and on out-of-bounds axis indices.
func TestAtSetOutOfRange(t *testing.T) {
	d, err := tensor.NewDense(2, 2, 1)
	require.NoError(t, err)

	_, err = d.At(0, 1)                           // wrong arity (rank is 3)
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange

	_, err = d.At(-1, 0, 0)                       // negative index
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange

	_, err = d.At(0, 2, 0)                        // axis 1 out of bounds
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange

	err = d.Set(1.5, 0, 0, 1)                     // axis 2 out of bounds
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGetRoundTrip validates Set followed by At on valid indices and
// the row-major placement in the Raw buffer.
func TestSetGetRoundTrip(t *testing.T) {
	d, err := tensor.NewDense(2, 2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(7.5, 1, 0, 1)) // write one element

	v, err := d.At(1, 0, 1) // read it back
	require.NoError(t, err)
	require.Equal(t, 7.5, v) // round-trips exactly

	// Row-major flat position: ((1*2)+0)*2 + 1 = 5.
	require.Equal(t, 7.5, d.Raw()[5]) // placement matches the stride contract
}

// TestCloneIndependence verifies that Clone produces a deep copy.
func TestCloneIndependence(t *testing.T) {
	d, err := tensor.NewDenseFrom([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(99, 0, 0)) // mutate the clone only

	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original untouched
	require.True(t, d.SameShape(c))
}

// TestFillAndRaw verifies Fill and the mutable-view contract of Raw.
func TestFillAndRaw(t *testing.T) {
	d, err := tensor.NewDense(2, 3)
	require.NoError(t, err)

	d.Fill(2.5)
	for _, v := range d.Raw() {
		require.Equal(t, 2.5, v) // every element filled
	}

	d.Raw()[0] = -1 // mutate through the view
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, v) // mutation visible via At
}

// TestSameShape covers equal, unequal and nil comparisons.
func TestSameShape(t *testing.T) {
	a, err := tensor.NewDense(2, 3)
	require.NoError(t, err)
	b, err := tensor.NewDense(2, 3)
	require.NoError(t, err)
	c, err := tensor.NewDense(3, 2)
	require.NoError(t, err)

	require.True(t, a.SameShape(b))  // identical shapes
	require.False(t, a.SameShape(c)) // transposed shape differs
	require.False(t, a.SameShape(nil))
}
