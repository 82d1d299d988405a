package signalscope

// NoTarget marks an interaction index that references nothing.
const NoTarget = -1

// Interaction tracks hover and selection against the current graph. All
// three fields are indices into the graph that produced them; a rebuild makes
// them meaningless, so the inspector calls Invalidate atomically with every
// graph swap.
type Interaction struct {
	HoveredCard  int
	SelectedCard int
	HoveredEdge  int

	cfg Config
}

// NewInteraction creates an interaction controller with nothing targeted.
func NewInteraction(cfg Config) *Interaction {
	return &Interaction{
		HoveredCard:  NoTarget,
		SelectedCard: NoTarget,
		HoveredEdge:  NoTarget,
		cfg:          cfg,
	}
}

// Invalidate resets every index to NoTarget. Must be called whenever the
// graph is rebuilt; stale indices would silently reference the wrong cards.
func (ix *Interaction) Invalidate() {
	ix.HoveredCard = NoTarget
	ix.SelectedCard = NoTarget
	ix.HoveredEdge = NoTarget
}

// cardAt returns the index of the first card whose rect contains the
// canvas-space point, or NoTarget. First match in card order wins; layout
// keeps cards non-overlapping so at most one should ever match.
func cardAt(g *Graph, p Vec2) int {
	for i := range g.Cards {
		if g.Cards[i].Rect.Contains(p.X, p.Y) {
			return i
		}
	}
	return NoTarget
}

// edgeNear returns the index of the first edge whose curve passes within the
// hit threshold of the canvas-space point, or NoTarget. The threshold is
// configured in screen pixels and divided by zoom so the effective
// screen-space slack stays constant at any zoom level.
func (ix *Interaction) edgeNear(g *Graph, p Vec2, zoom float64) int {
	if zoom <= 0 {
		return NoTarget
	}
	threshold := ix.cfg.EdgeHitThreshold / zoom
	for i := range g.Edges {
		e := &g.Edges[i]
		c0, c1 := edgeControlPoints(e.FromPort, e.ToPort, ix.cfg.CurveFraction, ix.cfg.CurveMax)
		if pointNearCurve(p, e.FromPort, c0, c1, e.ToPort, ix.cfg.EdgeSamples, threshold) {
			return i
		}
	}
	return NoTarget
}

// HoverAt updates hover state for a pointer at the canvas-space point.
// Cards take priority over edges and the two hovers are mutually exclusive.
// Returns true if the hover target changed (the caller should redraw);
// re-hovering the same target reports false so no-op moves stay free.
func (ix *Interaction) HoverAt(g *Graph, p Vec2, zoom float64) bool {
	card := cardAt(g, p)
	edge := NoTarget
	if card == NoTarget {
		edge = ix.edgeNear(g, p, zoom)
	}
	if card == ix.HoveredCard && edge == ix.HoveredEdge {
		return false
	}
	ix.HoveredCard = card
	ix.HoveredEdge = edge
	return true
}

// ClickAt resolves a left-click at the canvas-space point. Clicking a card
// selects it, clicking the selected card again deselects, clicking empty
// space clears the selection. Edges are never click targets. Returns true if
// the selection changed.
func (ix *Interaction) ClickAt(g *Graph, p Vec2) bool {
	card := cardAt(g, p)
	next := card
	if card != NoTarget && card == ix.SelectedCard {
		next = NoTarget // toggle off
	}
	if next == ix.SelectedCard {
		return false
	}
	ix.SelectedCard = next
	return true
}

// ClearHover drops any hover target. Returns true if something was hovered.
func (ix *Interaction) ClearHover() bool {
	if ix.HoveredCard == NoTarget && ix.HoveredEdge == NoTarget {
		return false
	}
	ix.HoveredCard = NoTarget
	ix.HoveredEdge = NoTarget
	return true
}

// HighlightSets derives the highlighted card and edge sets for the current
// selection: the selected card, every edge touching it, and every card at
// the other end of such an edge. Recomputed per draw, never stored. Both
// results are nil when nothing is selected (nothing is dimmed then).
func (ix *Interaction) HighlightSets(g *Graph) (cards, edges []bool) {
	if ix.SelectedCard == NoTarget || ix.SelectedCard >= len(g.Cards) {
		return nil, nil
	}
	cards = make([]bool, len(g.Cards))
	edges = make([]bool, len(g.Edges))
	cards[ix.SelectedCard] = true
	for i := range g.Edges {
		e := &g.Edges[i]
		if !e.Touches(ix.SelectedCard) {
			continue
		}
		edges[i] = true
		cards[e.From] = true
		cards[e.To] = true
	}
	return cards, edges
}
