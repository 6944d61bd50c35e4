// SPDX-License-Identifier: MIT

package spectral

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("spectral: graph is nil")

	// ErrEmptyGraph is returned when a metric needs at least one node.
	ErrEmptyGraph = errors.New("spectral: graph has no nodes")

	// ErrDisconnected is returned when a metric is undefined on a
	// disconnected graph (eccentricity, diameter).
	ErrDisconnected = errors.New("spectral: graph is not connected")
)
