package signalscope

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer draws the graph using the viewport transform and the interaction
// controller's highlight state. Draw order is deterministic: all edges first,
// then all cards, so cards visually occlude line origins.
type Renderer struct {
	cfg   Config
	src   *text.GoTextFaceSource
	curve []Vec2 // reused bezier sample buffer
}

// NewRenderer creates a renderer with the embedded Go Regular face.
func NewRenderer(cfg Config) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{cfg: cfg, src: src}, nil
}

// Draw renders the whole graph to dst. Every drawing primitive receives
// canvas→screen transformed coordinates; nothing is drawn untransformed.
func (r *Renderer) Draw(dst *ebiten.Image, g *Graph, vp *Viewport, ix *Interaction) drawStats {
	var stats drawStats

	dst.Fill(r.cfg.BackgroundColor.toRGBA())

	highlightCards, highlightEdges := ix.HighlightSets(g)

	for i := range g.Edges {
		r.drawEdge(dst, &g.Edges[i], vp, i == ix.HoveredEdge, highlightEdges, i)
		stats.edges++
	}
	for i := range g.Cards {
		r.drawCard(dst, &g.Cards[i], vp, &stats,
			i == ix.HoveredCard, i == ix.SelectedCard, highlightCards, i)
		stats.cards++
	}
	return stats
}

// drawEdge strokes one connection curve. Color precedence:
// hovered > selected-highlighted > dimmed > default.
func (r *Renderer) drawEdge(dst *ebiten.Image, e *Edge, vp *Viewport, hovered bool, highlighted []bool, index int) {
	clr := r.cfg.EdgeColor
	width := r.cfg.EdgeWidth
	switch {
	case hovered:
		clr = r.cfg.EdgeHoverColor
		width = r.cfg.EdgeHoverWidth
	case highlighted != nil && highlighted[index]:
		clr = r.cfg.EdgeHighlightColor
	case highlighted != nil:
		clr = clr.WithAlpha(r.cfg.DimOpacity)
	}

	c0, c1 := edgeControlPoints(e.FromPort, e.ToPort, r.cfg.CurveFraction, r.cfg.CurveMax)
	r.curve = sampleBezier(r.curve[:0], e.FromPort, c0, c1, e.ToPort, r.cfg.EdgeSamples)

	rgba := clr.toRGBA()
	prev := vp.CanvasToScreen(r.curve[0])
	for _, p := range r.curve[1:] {
		cur := vp.CanvasToScreen(p)
		vector.StrokeLine(dst,
			float32(prev.X), float32(prev.Y),
			float32(cur.X), float32(cur.Y),
			float32(width), rgba, true)
		prev = cur
	}
}

// drawCard paints one card: background, header band, border, then text.
// All card text is skipped when the effective font size would be illegible.
func (r *Renderer) drawCard(dst *ebiten.Image, card *Card, vp *Viewport, stats *drawStats,
	hovered, selected bool, highlighted []bool, index int) {

	dim := 1.0
	if highlighted != nil && !highlighted[index] {
		dim = r.cfg.DimOpacity
	}

	pos := vp.CanvasToScreen(Vec2{X: card.Rect.X, Y: card.Rect.Y})
	w := card.Rect.Width * vp.Zoom
	h := card.Rect.Height * vp.Zoom
	headerH := r.cfg.CardBaseHeight * vp.Zoom

	vector.DrawFilledRect(dst,
		float32(pos.X), float32(pos.Y), float32(w), float32(h),
		r.cfg.CardColor.WithAlpha(dim).toRGBA(), true)
	vector.DrawFilledRect(dst,
		float32(pos.X), float32(pos.Y), float32(w), float32(headerH),
		r.cfg.CardHeaderColor.WithAlpha(dim).toRGBA(), true)

	border := r.cfg.CardBorderColor
	switch {
	case selected:
		border = r.cfg.SelectedBorderColor
	case hovered:
		border = r.cfg.HoverBorderColor
	}
	vector.StrokeRect(dst,
		float32(pos.X), float32(pos.Y), float32(w), float32(h),
		1.5, border.WithAlpha(dim).toRGBA(), true)

	size := r.cfg.FontSize * vp.Zoom
	if size < r.cfg.MinTextSize {
		stats.textSkipped++
		return
	}
	face := &text.GoTextFace{Source: r.src, Size: size}
	pad := 6.0 * vp.Zoom

	// Header: name on the left, type name right-aligned.
	r.drawText(dst, card.Name, face, pos.X+pad, pos.Y+(headerH-size)/2, r.cfg.TextColor.WithAlpha(dim))
	typeW := text.Advance(card.Type, face)
	r.drawText(dst, card.Type, face, pos.X+w-pad-typeW, pos.Y+(headerH-size)/2, r.cfg.TypeTextColor.WithAlpha(dim))

	// Signal rows below the header: emitted first, then received.
	rowH := r.cfg.RowHeight * vp.Zoom
	y := pos.Y + headerH + r.cfg.CardPaddingY*vp.Zoom
	for _, sig := range card.Emitted {
		r.drawText(dst, "» "+sig, face, pos.X+pad, y, r.cfg.EmittedColor.WithAlpha(dim))
		y += rowH
	}
	for _, sig := range card.Received {
		r.drawText(dst, "« "+sig, face, pos.X+pad, y, r.cfg.ReceivedColor.WithAlpha(dim))
		y += rowH
	}
}

func (r *Renderer) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr.toRGBA())
	text.Draw(dst, s, face, op)
}
