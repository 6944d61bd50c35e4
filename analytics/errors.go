// SPDX-License-Identifier: MIT

package analytics

import "errors"

var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("analytics: graph is nil")

	// ErrUnknownNode is returned when a mutation or query names a node the
	// graph does not contain.
	ErrUnknownNode = errors.New("analytics: unknown node")

	// ErrNotImplemented marks capabilities that are declared but not
	// supported, such as incremental Laplacian tracking.
	ErrNotImplemented = errors.New("analytics: not implemented")
)
