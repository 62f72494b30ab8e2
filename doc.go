// Package tierplan turns typed work items with declared "happens-before"
// relationships into a validated execution schedule grouped into
// parallel-safe tiers.
//
// What is in the module?
//
//	plan/         Builder[T] (nodes + edges) and the immutable tiered Graph[T]
//	core/         the node arena: dense ids, inbound/outbound adjacency lists
//	dfs/          three-color topological sort with cycle paths, reachability
//	bfs/          breadth-first walks along successors or predecessors
//	layer/        longest-path tier assignment and checks
//	builder/      deterministic DAG fixtures (chains, fans, layered, random)
//	hclplan/      HCL plan files feeding a plan.Builder
//	cmd/tierplan  command printing the tiers of an HCL plan
//
// Quick example:
//
//	  fetch
//	  /   \
//	lint  test
//	  \   /
//	 package
//
//	b := plan.NewBuilder[string]()
//	fetch, lint, test, pkg := b.Node("fetch"), b.Node("lint"), b.Node("test"), b.Node("package")
//	b.Connect(fetch, lint)
//	b.Connect(fetch, test)
//	b.Connect(lint, pkg)
//	b.Connect(test, pkg)
//	g, _ := b.Build()
//	// g.Tiers() → [[fetch] [lint test] [package]]
//
// Tiers are executed under a barrier: everything in tier i may run at once,
// tier i+1 starts after tier i completes. Scheduling is all this module
// does; running payloads is left to the caller.
package tierplan
