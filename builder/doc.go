// Package builder constructs weighted geometric graphs and augments them
// with canonical edge sets.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the placement area.
//   - Constructors (composable through BuildGraph / Apply):
//     – RandomPlacement(n): n nodes at distinct random integer positions.
//     – GridPlacement(rows, cols): nodes on the unit integer lattice.
//     – Spec(vertices, edges): explicit vertices and edge lists.
//     – PathEdges, CycleEdges, StarEdges, CompleteEdges: constructor forms of the
//     topology generators below.
//   - Topology generators (mutate and return the same graph):
//     – Path:     consecutive edges over ascending node IDs.
//     – Cycle:    Path plus the min↔max closing edge.
//     – Star:     the smallest ID joined to every other node.
//     – Complete: every unordered pair.
//   - Weighting:
//     – SquaredDistance / AddWeightedEdge: the only weighting rule,
//     Δx² + Δy² between endpoint coordinates.
//   - YAML specs:
//     – ParseSpec / LoadSpec / FromYAML read the Spec input with yaml.v3.
//
// Guarantees:
//
//   - Idempotence: re-running a generator on g adds nothing new, because
//     AddWeightedEdge skips existing edges.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels wrapped with the constructor name.
//   - Determinism for a fixed seed (WithSeed) and constructor order.
package builder
