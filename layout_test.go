package signalscope

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainGraph builds a scanned graph of n cards connected in a chain.
func chainGraph(n int) *Graph {
	root := NewBasicNode("root", "Node")
	prev := root.AddChild(NewBasicNode("n00", "Node"))
	for i := 1; i < n; i++ {
		cur := root.AddChild(NewBasicNode(fmt.Sprintf("n%02d", i), "Node"))
		prev.Connect("next", cur, "on_next")
		prev = cur
	}
	return Scan(root)
}

func TestLayoutColumnPartition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CardsPerColumn = 3
	g := chainGraph(8)
	require.Len(t, g.Cards, 8)

	LayoutGraph(g, cfg)

	for i := range g.Cards {
		wantX := float64(i/3) * (cfg.CardWidth + cfg.ColumnGap)
		assert.Equal(t, wantX, g.Cards[i].Rect.X, "card %d column x", i)
		assert.Equal(t, cfg.CardWidth, g.Cards[i].Rect.Width)
	}
	// First card of each column restarts at the top.
	assert.Zero(t, g.Cards[0].Rect.Y)
	assert.Zero(t, g.Cards[3].Rect.Y)
	assert.Zero(t, g.Cards[6].Rect.Y)
}

func TestLayoutNonOverlap(t *testing.T) {
	for _, perColumn := range []int{1, 2, 5, 100} {
		cfg := DefaultConfig()
		cfg.CardsPerColumn = perColumn
		g := chainGraph(12)
		LayoutGraph(g, cfg)

		var prevX float64 = -1
		for i := range g.Cards {
			for j := i + 1; j < len(g.Cards); j++ {
				a, b := g.Cards[i].Rect, g.Cards[j].Rect
				if a.X != b.X {
					continue // different columns never collide horizontally
				}
				overlap := a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
				assert.False(t, overlap, "perColumn=%d: cards %d and %d overlap", perColumn, i, j)
			}
			if i%perColumn == 0 {
				assert.Greater(t, g.Cards[i].Rect.X, prevX, "column x not monotonic")
				prevX = g.Cards[i].Rect.X
			}
		}
	}
}

func TestLayoutCardHeight(t *testing.T) {
	cfg := DefaultConfig()
	g := Scan(scenarioTree(false))
	LayoutGraph(g, cfg)

	// Card b has one emitted and one received signal: two rows.
	b := g.Cards[1]
	require.Equal(t, 2, b.RowCount())
	want := cfg.CardBaseHeight + 2*cfg.RowHeight + 2*cfg.CardPaddingY
	assert.Equal(t, want, b.Rect.Height)
}

func TestLayoutPorts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CardsPerColumn = 1
	g := Scan(scenarioTree(false))
	LayoutGraph(g, cfg)

	for i := range g.Edges {
		e := g.Edges[i]
		from := g.Cards[e.From].Rect
		to := g.Cards[e.To].Rect
		assert.Equal(t, Vec2{X: from.X + from.Width, Y: from.Y + from.Height/2}, e.FromPort)
		assert.Equal(t, Vec2{X: to.X, Y: to.Y + to.Height/2}, e.ToPort)
	}
}

func TestLayoutRecomputesOnRescan(t *testing.T) {
	cfg := DefaultConfig()
	g := Scan(scenarioTree(false))
	LayoutGraph(g, cfg)
	first := make([]Rect, len(g.Cards))
	for i := range g.Cards {
		first[i] = g.Cards[i].Rect
	}

	g2 := Scan(scenarioTree(false))
	LayoutGraph(g2, cfg)
	for i := range g2.Cards {
		assert.Equal(t, first[i], g2.Cards[i].Rect, "layout not deterministic for card %d", i)
	}
}
