// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by graph builders, ensuring
// consistent error context across all constructors.
package builder

// Method name constants used to prefix errors with the constructor name.
const (
	// MethodRandomPlacement is the canonical name for the RandomPlacement constructor.
	MethodRandomPlacement = "RandomPlacement"
	// MethodSpec is the canonical name for the Spec constructor.
	MethodSpec = "Spec"
	// MethodAddWeightedEdge is the canonical name for AddWeightedEdge.
	MethodAddWeightedEdge = "AddWeightedEdge"
	// MethodPath is the canonical name for the Path generator.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle generator.
	MethodCycle = "Cycle"
	// MethodComplete is the canonical name for the Complete generator.
	MethodComplete = "Complete"
	// MethodGridPlacement is the canonical name for the GridPlacement constructor.
	MethodGridPlacement = "GridPlacement"
	// MethodStar is the canonical name for the Star generator.
	MethodStar = "Star"
	// MethodParseSpec is the canonical name for the YAML spec parser.
	MethodParseSpec = "ParseSpec"
)

// coordsPerPoint is the number of coordinates a YAML node entry must carry.
const coordsPerPoint = 2
