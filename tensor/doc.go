// Package tensor offers dense rank-N float64 storage for batched,
// matrix-valued data.
//
// The tensor package provides:
//
//   - Dense, a row-major flat-buffer tensor of arbitrary rank with
//     strict shape validation and O(1) indexed access.
//   - Elementwise kernels (Add, Sub, Hadamard, Scale, AddScaled, SubTo,
//     Sum) delegating tight loops to gonum/floats and viterin/vek.
//
// Dense is best for small-to-medium batched tensors where a single
// contiguous buffer and predictable strides are acceptable; it carries
// no sparsity, views, or device placement.
//
// See the examples in this package and flowmatch for usage patterns.
package tensor
