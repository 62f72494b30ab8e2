package plan_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tierplan/dfs"
	"github.com/katalvlaran/tierplan/plan"
)

// letters registers one node per name and returns the handles by name.
func letters(b *plan.Builder[string], names ...string) map[string]plan.NodeHandle[string] {
	out := make(map[string]plan.NodeHandle[string], len(names))
	for _, n := range names {
		out[n] = b.Node(n)
	}
	return out
}

func TestBuild_FanOut(t *testing.T) {
	b := plan.NewBuilder[string]()
	n := letters(b, "A", "B", "C")
	b.Connect(n["A"], n["B"])
	b.Connect(n["A"], n["C"])

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}}, g.Tiers())
	assert.Equal(t, []string{"A", "C", "B"}, g.Order())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.TierCount())
	assert.Equal(t, 2, g.Width())
}

func TestBuild_Diamond(t *testing.T) {
	b := plan.NewBuilder[string]()
	n := letters(b, "A", "B", "C", "D")
	b.Connect(n["A"], n["B"])
	b.Connect(n["A"], n["C"])
	b.Connect(n["B"], n["D"])
	b.Connect(n["C"], n["D"])

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}, {"D"}}, g.Tiers())
	assert.Equal(t, []string{"A", "C", "B", "D"}, g.Order())
	assert.Equal(t, 4, g.EdgeCount())

	tier, ok := g.TierOf(n["D"])
	assert.True(t, ok)
	assert.Equal(t, 2, tier)
	assert.Equal(t, []string{"B", "C", "D"}, g.Descendants(n["A"]))
	assert.Empty(t, g.Descendants(n["D"]))
	assert.Equal(t, []string{"A", "B", "C"}, g.Ancestors(n["D"]))
	assert.Empty(t, g.Ancestors(n["A"]))

	d, ok := g.Distance(n["A"], n["D"])
	assert.True(t, ok)
	assert.Equal(t, 2, d)
	_, ok = g.Distance(n["D"], n["A"])
	assert.False(t, ok)
}

func TestBuild_TwoNodeCycle(t *testing.T) {
	b := plan.NewBuilder[string]()
	n := letters(b, "A", "B")
	b.Connect(n["A"], n["B"])
	b.Connect(n["B"], n["A"])

	g, err := b.Build()
	require.Error(t, err)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, plan.ErrCycleDetected)
	assert.ErrorIs(t, err, plan.ErrNoStartNodes)

	var berr *plan.BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, plan.KindNoStartNodes, berr.Kind)
	assert.Contains(t, []int{0, 1}, berr.NodeID)
	assert.Equal(t, []int{0, 1, 0}, berr.Path)

	var ce *dfs.CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, berr.NodeID, ce.NodeID)
}

func TestBuild_Chain(t *testing.T) {
	b := plan.NewBuilder[string]()
	names := []string{"N0", "N1", "N2", "N3", "N4"}
	var prev plan.NodeHandle[string]
	for i, name := range names {
		h := b.Node(name)
		if i > 0 {
			b.Connect(prev, h)
		}
		prev = h
	}

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"N0"}, {"N1"}, {"N2"}, {"N3"}, {"N4"}}, g.Tiers())
	assert.Equal(t, names, g.Order())
	assert.Equal(t, 1, g.Width())
}

func TestBuild_SingleNode(t *testing.T) {
	b := plan.NewBuilder[string]()
	b.Node("A")

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}}, g.Tiers())
	assert.Equal(t, 1, g.NodeCount())
}

func TestBuild_Empty(t *testing.T) {
	g, err := plan.NewBuilder[int]().Build()
	assert.Nil(t, g)
	require.ErrorIs(t, err, plan.ErrEmptyGraph)
	assert.NotErrorIs(t, err, plan.ErrCycleDetected)

	var berr *plan.BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, plan.KindEmptyGraph, berr.Kind)
	assert.Equal(t, -1, berr.NodeID)
	assert.Equal(t, "plan: build: dfs: graph has no nodes", err.Error())
}

func TestBuild_CycleBehindStartNode(t *testing.T) {
	b := plan.NewBuilder[string]()
	n := letters(b, "A", "B", "C")
	b.Connect(n["A"], n["B"])
	b.Connect(n["B"], n["C"])
	b.Connect(n["C"], n["B"])

	_, err := b.Build()
	require.ErrorIs(t, err, plan.ErrCycleDetected)
	assert.NotErrorIs(t, err, plan.ErrNoStartNodes)

	var berr *plan.BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, plan.KindCycleDetected, berr.Kind)
	assert.Equal(t, 1, berr.NodeID)
}

func TestBuild_SelfLoop(t *testing.T) {
	b := plan.NewBuilder[string]()
	root := b.Node("root")
	loop := b.Node("loop")
	b.Connect(root, loop)
	b.Connect(loop, loop)

	_, err := b.Build()
	require.ErrorIs(t, err, plan.ErrCycleDetected)
}

func TestBuild_FormatterLabelsCycle(t *testing.T) {
	type job struct{ name string }

	b := plan.NewBuilder[job](plan.WithFormatter(func(j job) string { return j.name }))
	x := b.Node(job{"x"})
	y := b.Node(job{"y"})
	b.Connect(x, y)
	b.Connect(y, x)

	_, err := b.Build()
	var berr *plan.BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, []string{"x", "y", "x"}, berr.Labels)
	assert.True(t, strings.HasSuffix(err.Error(), "(x → y → x)"), err.Error())
	assert.True(t, strings.HasPrefix(err.Error(), "plan: build: "), err.Error())
}

func TestBuild_DuplicateEdges(t *testing.T) {
	b := plan.NewBuilder[string]()
	n := letters(b, "A", "B")
	b.Connect(n["A"], n["B"])
	b.Connect(n["A"], n["B"])
	assert.Equal(t, 2, b.EdgeCount())
	assert.Len(t, b.Inbound(n["B"]), 2)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}, {"B"}}, g.Tiers())
}

func TestBuild_Repeatable(t *testing.T) {
	b := plan.NewBuilder[string]()
	n := letters(b, "a", "b", "c", "d", "e")
	b.Connect(n["e"], n["a"])
	b.Connect(n["d"], n["b"])
	b.Connect(n["a"], n["c"])

	first, err := b.Build()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, first.Tiers(), again.Tiers())
		assert.Equal(t, first.Order(), again.Order())
	}
	assert.Equal(t, [][]string{{"d", "e"}, {"a", "b"}, {"c"}}, first.Tiers())

	// Growing the Builder does not touch an earlier Graph.
	f := b.Node("f")
	b.Connect(n["c"], f)
	grown, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, first.NodeCount())
	assert.Equal(t, 6, grown.NodeCount())
	assert.Equal(t, []string{"f"}, grown.Tier(3))

	_, ok := first.TierOf(f)
	assert.False(t, ok, "node added after build")
	tier, ok := grown.TierOf(f)
	assert.True(t, ok)
	assert.Equal(t, 3, tier)

	// Closing a cycle later fails the next build only.
	b.Connect(f, n["e"])
	_, err = b.Build()
	assert.ErrorIs(t, err, plan.ErrCycleDetected)
	assert.Equal(t, 4, grown.TierCount())
}

func TestBuilder_Accessors(t *testing.T) {
	b := plan.NewBuilder[int](plan.WithCapacity(4, 4))
	h0 := b.Node(10)
	h1 := b.Node(11)
	h2 := b.Node(12)
	b.Connect(h0, h2)
	b.Connect(h1, h2)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []plan.NodeHandle[int]{h0, h1, h2}, b.Handles())
	for i, h := range b.Handles() {
		assert.Equal(t, i, h.ID())
		assert.True(t, h.Valid())
	}
	assert.Equal(t, 12, b.Payload(h2))
	assert.Equal(t, []plan.NodeHandle[int]{h0, h1}, b.Inbound(h2))
	assert.Equal(t, []plan.NodeHandle[int]{h2}, b.Outbound(h0))
	assert.Empty(t, b.Outbound(h2))
	assert.Equal(t, "node#2", h2.String())

	// handles are comparable and usable as set keys
	set := map[plan.NodeHandle[int]]bool{h0: true}
	assert.True(t, set[b.Handles()[0]])
	assert.False(t, set[h1])
}

func TestBuilder_ForeignHandlePanics(t *testing.T) {
	a := plan.NewBuilder[string]()
	other := plan.NewBuilder[string]()
	mine := a.Node("mine")
	theirs := other.Node("theirs")

	assert.PanicsWithValue(t, "plan: Connect: node#0 belongs to another Builder", func() {
		a.Connect(mine, theirs)
	})
	assert.Panics(t, func() { a.Connect(theirs, mine) })
	assert.Panics(t, func() { a.Connect(mine, plan.NodeHandle[string]{}) })
	assert.Panics(t, func() { a.Payload(theirs) })
	assert.Equal(t, 0, a.EdgeCount(), "nothing recorded by a rejected Connect")

	var zero plan.NodeHandle[string]
	assert.False(t, zero.Valid())
	assert.Equal(t, "node#invalid", zero.String())

	g, err := a.Build()
	require.NoError(t, err)
	_, ok := g.TierOf(theirs)
	assert.False(t, ok)
	assert.Nil(t, g.Descendants(theirs))
	assert.Nil(t, g.Ancestors(theirs))
	_, ok = g.Distance(mine, theirs)
	assert.False(t, ok)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { plan.WithLogger(nil) })
	assert.Panics(t, func() { plan.WithFormatter[string](nil) })
	assert.Panics(t, func() { plan.WithCapacity(-1, 0) })
}

func TestBuild_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := plan.NewBuilder[string](plan.WithLogger(log))
	n := letters(b, "A", "B", "C")
	b.Connect(n["A"], n["B"])
	b.Connect(n["A"], n["C"])
	_, err := b.Build()
	require.NoError(t, err)

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		msgs = append(msgs, rec["msg"].(string))
		if rec["msg"] == "build.layered" {
			assert.EqualValues(t, 2, rec["tiers"])
			assert.EqualValues(t, 2, rec["width"])
		}
	}
	assert.Equal(t, []string{"build.start", "build.sorted", "build.layered"}, msgs)

	buf.Reset()
	b.Connect(n["C"], n["A"])
	_, err = b.Build()
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"kind":"CycleDetected"`)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "EmptyGraph", plan.KindEmptyGraph.String())
	assert.Equal(t, "NoStartNodes", plan.KindNoStartNodes.String())
	assert.Equal(t, "CycleDetected", plan.KindCycleDetected.String())
	assert.Equal(t, "ErrorKind(9)", plan.ErrorKind(9).String())
}

func TestSentinels_AliasDFS(t *testing.T) {
	assert.True(t, errors.Is(plan.ErrEmptyGraph, dfs.ErrEmptyGraph))
	assert.True(t, errors.Is(plan.ErrNoStartNodes, dfs.ErrNoStartNodes))
	assert.True(t, errors.Is(plan.ErrCycleDetected, dfs.ErrCycleDetected))
}
