// Package core provides the node arena that every other tierplan package
// builds on: a single owning slice of node records indexed by integer id,
// with inbound and outbound adjacency stored as id lists.
//
// The Table[T] replaces shared, reference-counted node cells with plain
// indices. A node is identified by the position it was appended at, so ids
// form the contiguous range 0..Len()-1 in creation order and are never
// reused. Edges are back/forward references (ids), never ownership.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(payload T) int                 // O(1) amortized
//	HasNode(id int) bool                   // O(1)
//	Payload(id int) (T, error)             // O(1)
//
//	// Edge lifecycle
//	Connect(tail, head int) error          // O(1) amortized
//
//	// Query
//	Inbound(id int) ([]int, error)         // O(d), insertion order, duplicates kept
//	Outbound(id int) ([]int, error)        // O(d), insertion order, duplicates kept
//	NeighborIDs(id int) ([]int, error)     // O(d·log d), unique, ascending
//	StartNodes() []int                     // O(V), ascending
//	SinkNodes() []int                      // O(V), ascending
//	Edges() []Edge                         // O(E), insertion order
//
//	// Counts & snapshots
//	Len() int, EdgeCount() int             // O(1)
//	InDegree(id), OutDegree(id)            // O(1)
//	Clone() *Table[T]                      // O(V+E) deep copy of adjacency
//	Stats() Stats                          // O(V+E)
//
// Errors:
//
//	ErrNodeNotFound - id outside 0..Len()-1.
//
// Concurrency:
//
//	A Table is a single-writer staging area and performs no locking. Once a
//	Table is no longer mutated (for example a Clone taken at build time) it
//	may be read from any number of goroutines.
package core
