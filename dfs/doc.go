// Package dfs implements depth-first algorithms over a core.Table: the
// cycle-safe topological sort used to validate a plan, and forward
// reachability.
//
// What:
//
//   - TopologicalSort: three-color depth-first search (White, Gray, Black)
//     seeded from every start node (empty inbound list) in ascending id
//     order. Outbound neighbors are also visited in ascending id order, so
//     the result depends only on the table contents. Finishing order is
//     reversed to give a forward linearization.
//   - Reachable: every node reachable from a given node via outbound edges.
//
// The walk uses an explicit stack instead of recursion, so chains of any
// length are sorted without growing the goroutine stack.
//
// Errors:
//
//   - ErrGraphNil       table pointer is nil
//   - ErrEmptyGraph     table has no nodes
//   - ErrNoStartNodes   every node has at least one predecessor
//   - ErrCycleDetected  matched by *CycleError, which names the node that
//     closes the cycle and the cycle path
//
// Complexity:
//
//   - TopologicalSort: Time O(V + E·log d), Memory O(V)
//   - Reachable:       Time O(V + E·log d), Memory O(V)
package dfs
