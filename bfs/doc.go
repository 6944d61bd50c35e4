// Package bfs walks a core.Graph breadth-first and reports hop distances.
//
// BFS visits every node reachable from a start node in non-decreasing hop
// count and returns the visit order together with each node's depth.
// BFSResult.Eccentricity gives the start node's eccentricity. Reachable
// answers a single pair query and stops at the target.
//
// Edge weights (squared distances) play no part: depth is an edge count.
//
// Options
//
//	WithContext  cancellation; the walk returns ctx.Err()
//	WithOnVisit  hook per visited node; an error aborts the walk
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in ascending ID order, so the
//	visit sequence is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors
//
//   - ErrGraphNil              nil graph
//   - ErrStartVertexNotFound   unknown start node
//   - ErrTargetVertexNotFound  unknown Reachable target
//   - ErrNeighbors             neighbor lookup failed
//   - wrapped OnVisit errors and ctx.Err()
package bfs
