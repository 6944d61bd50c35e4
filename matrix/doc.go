// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer under the spectral
// analytics: a safe row-major Dense type, the graph → adjacency adapter,
// row-stochastic normalization and general (complex) eigenvalues.
//
// Components:
//
//   - Dense: row-major storage; At/Set return ErrOutOfRange instead of
//     panicking and Set rejects NaN/Inf with ErrNaNInf.
//   - Adjacency / NewAdjacency: {0,1} symmetric matrix over the ascending
//     node-ID order. Diagonal 1 by default, 0 with WithSelfAvoiding().
//     SetEdge patches mirrored cells in O(1) for incremental maintenance.
//   - Stochastic: divides each row by its sum; a zero row sum fails with
//     ErrSingularStochastic rather than producing NaN/Inf.
//   - SelfInclusive: sets the diagonal to 1 on a copy.
//   - Eigenvalues: gonum mat.Eigen over a copy of the matrix; no ordering.
//
// Errors are sentinels matched with errors.Is; algorithms never panic.
package matrix
