// Package plan turns typed work items with declared "happens-before"
// relationships into a validated execution schedule grouped into
// parallel-safe tiers.
//
// Usage:
//
//	b := plan.NewBuilder[string]()
//	fetch := b.Node("fetch")
//	lint := b.Node("lint")
//	test := b.Node("test")
//	b.Connect(fetch, lint) // fetch happens before lint
//	b.Connect(fetch, test)
//
//	g, err := b.Build()
//	// g.Tiers() == [][]string{{"fetch"}, {"lint", "test"}}
//
// Lifecycle:
//
//   - Node(payload) registers a node and returns a NodeHandle. Ids are
//     0..N-1 in creation order and are never reused.
//   - Connect(tail, head) adds an edge. Edges may be added in any order and
//     duplicates are kept. Handles from another Builder make Connect panic.
//   - Build() freezes a snapshot, sorts it (three-color DFS), assigns
//     longest-path tiers and returns an immutable Graph. It never mutates the
//     Builder and may be called again after further Node/Connect calls.
//
// Determinism:
//
//	Creation order is the tie-break everywhere: within a tier, payloads are
//	ordered by ascending node id, and repeated builds of an unchanged Builder
//	return identical graphs.
//
// Errors (match with errors.Is / errors.As):
//
//   - ErrEmptyGraph     Build with zero nodes
//   - ErrNoStartNodes   every node has a predecessor
//   - ErrCycleDetected  a back-edge was found; *BuildError carries the node id
//
// Concurrency:
//
//	A Builder is a single-writer staging area and must not be mutated
//	concurrently. A Graph is deeply immutable and safe for concurrent
//	readers. Consumers run tiers under a barrier: all payloads of tier i may
//	be dispatched concurrently, and tier i+1 starts only after tier i has
//	completed. This package computes the schedule only; it never runs
//	payloads.
package plan
