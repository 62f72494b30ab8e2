// Package builder provides deterministic DAG fixtures for plan.Builder.
//
// Fixtures are Constructors composed by BuildPlan; each one appends its own
// nodes (labelled through the configured ID scheme) and edges to a
// *plan.Builder[string]. Constructors run in call order, so
//
//	b, err := builder.BuildPlan(nil, builder.Chain(3), builder.Diamond())
//
// yields seven nodes in two disconnected components.
//
// Constructors:
//   - Chain(n)            n nodes, i-1 → i.
//   - FanOut(n)           one root feeding n leaves.
//   - FanIn(n)            n sources feeding one sink.
//   - Diamond()           a → b, a → c, b → d, c → d.
//   - Layered(widths...)  complete bipartite edges between consecutive layers.
//   - RandomDAG(n, p)     each forward pair i < j gets an edge with probability p.
//   - Ring(n)             i → (i+1) mod n; cyclic, for failure paths.
//
// Options:
//   - WithIDScheme / WithSymbolIDs / WithExcelColumnIDs / WithPrefixIDs
//   - WithSeed / WithRand for RandomDAG
//   - WithPlanOptions to configure the plan.Builder itself
//
// Option constructors panic on meaningless input; constructors return the
// sentinels in errors.go wrapped with context.
package builder
