package dfs_test

import (
	"testing"

	"github.com/katalvlaran/tierplan/core"
	"github.com/katalvlaran/tierplan/dfs"
)

// BenchmarkTopologicalSort_Chain10000 sorts a linear chain N0 → ... → N9999.
func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	tbl := core.NewTable[int]()
	for i := 0; i < 10000; i++ {
		tbl.AddNode(i)
	}
	for i := 1; i < 10000; i++ {
		_ = tbl.Connect(i-1, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(tbl)
	}
}

// BenchmarkTopologicalSort_Layered sorts 100 tiers of 100 nodes, each node
// depending on every node of the previous tier.
func BenchmarkTopologicalSort_Layered(b *testing.B) {
	const tiers, width = 100, 100
	tbl := core.NewTable[int]()
	for i := 0; i < tiers*width; i++ {
		tbl.AddNode(i)
	}
	for l := 1; l < tiers; l++ {
		for u := 0; u < width; u++ {
			for v := 0; v < width; v++ {
				_ = tbl.Connect((l-1)*width+u, l*width+v)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(tbl)
	}
}
