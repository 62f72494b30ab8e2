// Package layer assigns tiers to the nodes of an acyclic core.Table and
// groups them into parallel-safe levels.
//
// Tiers use longest-path layering:
//
//	tier(n) = 0                          if n has no predecessors
//	tier(n) = 1 + max(tier(p) : p → n)   otherwise
//
// A node's tier strictly exceeds the tier of every predecessor, so every
// edge crosses from an earlier tier to a later one. Each tier holds every
// node whose predecessors are all in earlier tiers, which is the widest
// grouping that still respects the edges.
//
// Consumers are expected to run tiers under a barrier: everything in tier
// i may run concurrently, and tier i+1 starts only after tier i completes.
// This package only computes the grouping.
//
// Complexity:
//
//   - Assign:   O(V + E) given a topological order
//   - Group:    O(V)
//   - Validate: O(E)
package layer
