// Package flowmatch_test: shared fixtures for the matcher tests.
package flowmatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessellate-ml/graphflow/flowmatch"
	"github.com/tessellate-ml/graphflow/tensor"
)

// testPad is the pad sentinel used by every fixture in this package.
const testPad = -1.0

// newPaddedBatch builds an (n, n, b, d) batch where sample b keeps its
// first valid[b] nodes real; every entry touching a padded node (row or
// column) carries the pad sentinel, symmetrically. Real entries hold
// float64(i+j)/10, which is symmetric in the node axes and never
// collides with the sentinel.
func newPaddedBatch(t *testing.T, n, bs, dd int, valid []int) *tensor.Dense {
	t.Helper()
	require.Len(t, valid, bs) // one valid-node count per sample

	x, err := tensor.NewDense(n, n, bs, dd)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for b := 0; b < bs; b++ {
				v := float64(i+j) / 10
				if i >= valid[b] || j >= valid[b] {
					v = testPad // padded node pair
				}
				for k := 0; k < dd; k++ {
					require.NoError(t, x.Set(v, i, j, b, k))
				}
			}
		}
	}

	return x
}

// newMatcher builds a Matcher with the package test pad value plus any
// extra options, failing the test on construction errors.
func newMatcher(t *testing.T, opts ...flowmatch.Option) *flowmatch.Matcher {
	t.Helper()
	all := append([]flowmatch.Option{flowmatch.WithPadValue(testPad)}, opts...)
	m, err := flowmatch.New(all...)
	require.NoError(t, err)

	return m
}
