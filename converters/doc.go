// Package converters provides two-way adapters between core.Graph and
// gonum/graph, so gonum's algorithm suite (topo, path, network, ...) can
// run over netopt graphs.
//
// Mapping:
//   - node ID int ↔ simple.Node(int64)
//   - undirected weighted edge ↔ simple.WeightedEdge (self weight 0,
//     absent weight +Inf)
//   - coordinates have no gonum counterpart; FromGonum takes them from
//     a separate position map.
package converters
