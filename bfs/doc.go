// Package bfs provides breadth-first traversal over a core.Table, following
// either outbound (successor) or inbound (predecessor) edges.
//
// The walk visits nodes in non-decreasing hop distance from the start; at
// equal distance, neighbors are expanded in ascending id order, so results
// are deterministic. Options add a depth limit, cancellation and a visit
// hook.
package bfs
