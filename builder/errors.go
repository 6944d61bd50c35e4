// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` ("<Method>: ...: %w").
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a node count is negative.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrAreaTooSmall indicates that the coordinate square [0,area]² cannot hold
// the requested number of distinct integer positions.
var ErrAreaTooSmall = errors.New("builder: placement area too small")

// ErrGraphNil indicates a nil *core.Graph was handed to a generator.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrConstructFailed indicates that a constructor could not be applied
// (e.g., a nil Constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrSpecFormat indicates a malformed YAML graph specification.
var ErrSpecFormat = errors.New("builder: malformed graph spec")
