package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tierplan/core"
	"github.com/katalvlaran/tierplan/dfs"
	"github.com/katalvlaran/tierplan/layer"
)

func newTable(t *testing.T, n int, edges ...[2]int) *core.Table[int] {
	t.Helper()
	tbl := core.NewTable[int]()
	for i := 0; i < n; i++ {
		tbl.AddNode(i)
	}
	for _, e := range edges {
		require.NoError(t, tbl.Connect(e[0], e[1]))
	}

	return tbl
}

// sortAndGroup runs the full sort → assign → group pipeline.
func sortAndGroup(t *testing.T, tbl *core.Table[int]) ([]int, [][]int) {
	t.Helper()
	order, err := dfs.TopologicalSort(tbl)
	require.NoError(t, err)
	tiers, err := layer.Assign(tbl, order)
	require.NoError(t, err)
	require.NoError(t, layer.Validate(tbl, tiers))

	return tiers, layer.Group(tiers)
}

func TestAssign_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		edges  [][2]int
		tiers  []int
		groups [][]int
	}{
		{
			name:   "fan-out",
			n:      3,
			edges:  [][2]int{{0, 1}, {0, 2}},
			tiers:  []int{0, 1, 1},
			groups: [][]int{{0}, {1, 2}},
		},
		{
			name:   "diamond",
			n:      4,
			edges:  [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
			tiers:  []int{0, 1, 1, 2},
			groups: [][]int{{0}, {1, 2}, {3}},
		},
		{
			name:   "chain",
			n:      5,
			edges:  [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
			tiers:  []int{0, 1, 2, 3, 4},
			groups: [][]int{{0}, {1}, {2}, {3}, {4}},
		},
		{
			name:   "single",
			n:      1,
			tiers:  []int{0},
			groups: [][]int{{0}},
		},
		{
			// 0→3 is a shortcut; longest path pushes 3 below 2.
			name:   "longest path wins",
			n:      4,
			edges:  [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
			tiers:  []int{0, 1, 2, 3},
			groups: [][]int{{0}, {1}, {2}, {3}},
		},
		{
			// creation order, not topological order, decides order inside a tier
			name:   "ids ascending inside tier",
			n:      5,
			edges:  [][2]int{{4, 0}, {4, 2}, {3, 1}},
			tiers:  []int{1, 1, 1, 0, 0},
			groups: [][]int{{3, 4}, {0, 1, 2}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tiers, groups := sortAndGroup(t, newTable(t, tc.n, tc.edges...))
			assert.Equal(t, tc.tiers, tiers)
			assert.Equal(t, tc.groups, groups)
		})
	}
}

func TestAssign_DuplicateEdges(t *testing.T) {
	tiers, groups := sortAndGroup(t, newTable(t, 2, [2]int{0, 1}, [2]int{0, 1}, [2]int{0, 1}))
	assert.Equal(t, []int{0, 1}, tiers)
	assert.Equal(t, [][]int{{0}, {1}}, groups)
}

func TestAssign_InvalidOrder(t *testing.T) {
	tbl := newTable(t, 3, [2]int{0, 1}, [2]int{1, 2})

	cases := []struct {
		name  string
		order []int
	}{
		{"too short", []int{0, 1}},
		{"repeated id", []int{0, 1, 1}},
		{"unknown id", []int{0, 1, 7}},
		{"head before tail", []int{0, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tiers, err := layer.Assign(tbl, tc.order)
			assert.Nil(t, tiers)
			assert.ErrorIs(t, err, layer.ErrOrderInvalid)
		})
	}
}

func TestAssign_NilGraph(t *testing.T) {
	_, err := layer.Assign[int](nil, nil)
	assert.ErrorIs(t, err, layer.ErrGraphNil)
	assert.ErrorIs(t, layer.Validate[int](nil, nil), layer.ErrGraphNil)
}

func TestValidate_DetectsBackwardEdge(t *testing.T) {
	tbl := newTable(t, 3, [2]int{0, 1}, [2]int{1, 2})

	assert.NoError(t, layer.Validate(tbl, []int{0, 1, 2}))
	assert.ErrorIs(t, layer.Validate(tbl, []int{0, 1, 1}), layer.ErrEdgeNotForward)
	assert.ErrorIs(t, layer.Validate(tbl, []int{1, 0, 2}), layer.ErrEdgeNotForward)
	assert.ErrorIs(t, layer.Validate(tbl, []int{0, 1}), layer.ErrOrderInvalid)
}

func TestGroupAndWidth(t *testing.T) {
	groups := layer.Group([]int{2, 0, 1, 0, 1, 1})
	assert.Equal(t, [][]int{{1, 3}, {2, 4, 5}, {0}}, groups)
	assert.Equal(t, 3, layer.Width(groups))

	assert.Empty(t, layer.Group(nil))
	assert.Zero(t, layer.Width(nil))
}
