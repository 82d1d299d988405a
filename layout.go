package signalscope

// LayoutGraph assigns every card a canvas-space rect and recomputes edge
// ports. The layout is a deterministic single pass: cards fill fixed-capacity
// columns in card order, each column packs top to bottom, and all cards share
// the configured width. No iterative refinement, no cross-column overlap
// handling: non-overlap follows from the packing itself.
func LayoutGraph(g *Graph, cfg Config) {
	perColumn := cfg.CardsPerColumn
	if perColumn < 1 {
		perColumn = 1
	}

	columnY := 0.0
	for i := range g.Cards {
		card := &g.Cards[i]
		column := i / perColumn
		if i%perColumn == 0 {
			columnY = 0
		}

		height := cfg.CardBaseHeight +
			float64(card.RowCount())*cfg.RowHeight +
			2*cfg.CardPaddingY

		card.Rect = Rect{
			X:      float64(column) * (cfg.CardWidth + cfg.ColumnGap),
			Y:      columnY,
			Width:  cfg.CardWidth,
			Height: height,
		}
		columnY += height + cfg.RowGap
	}

	computePorts(g)
}

// computePorts rederives every edge's anchor points from its cards' rects:
// right-center of the emitter, left-center of the receiver. Must run after
// any pass that moves card rects.
func computePorts(g *Graph) {
	for i := range g.Edges {
		edge := &g.Edges[i]
		from := g.Cards[edge.From].Rect
		to := g.Cards[edge.To].Rect
		edge.FromPort = Vec2{X: from.X + from.Width, Y: from.Y + from.Height/2}
		edge.ToPort = Vec2{X: to.X, Y: to.Y + to.Height/2}
	}
}
