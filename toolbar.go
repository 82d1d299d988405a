package signalscope

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Toolbar actions.
const (
	toolbarNone = iota
	toolbarRefresh
	toolbarReset
)

// toolbar is the strip along the top of the window: the Refresh and Reset
// View buttons plus a status line with the current graph's counts. It lives
// entirely in screen space and is unaffected by the viewport transform.
type toolbar struct {
	cfg         Config
	refreshRect Rect
	resetRect   Rect
	hovered     int // toolbarNone, toolbarRefresh, or toolbarReset
	status      string
}

func newToolbar(cfg Config) *toolbar {
	buttonH := cfg.ToolbarHeight - 10
	return &toolbar{
		cfg:         cfg,
		refreshRect: Rect{X: 8, Y: 5, Width: 84, Height: buttonH},
		resetRect:   Rect{X: 100, Y: 5, Width: 104, Height: buttonH},
		hovered:     toolbarNone,
	}
}

// hitAt returns the action under the screen-space point.
func (t *toolbar) hitAt(pos Vec2) int {
	switch {
	case t.refreshRect.Contains(pos.X, pos.Y):
		return toolbarRefresh
	case t.resetRect.Contains(pos.X, pos.Y):
		return toolbarReset
	default:
		return toolbarNone
	}
}

// hoverAt updates the hovered button. Returns true if it changed.
func (t *toolbar) hoverAt(pos Vec2) bool {
	next := t.hitAt(pos)
	if next == t.hovered {
		return false
	}
	t.hovered = next
	return true
}

// clearHover drops button hover. Returns true if a button was hovered.
func (t *toolbar) clearHover() bool {
	if t.hovered == toolbarNone {
		return false
	}
	t.hovered = toolbarNone
	return true
}

// setStatus rebuilds the status line from a freshly scanned graph.
func (t *toolbar) setStatus(g *Graph) {
	t.status = fmt.Sprintf("%d cards · %d edges", len(g.Cards), len(g.Edges))
	if g.Omitted > 0 {
		t.status += fmt.Sprintf(" · %d omitted", g.Omitted)
	}
}

// draw paints the toolbar strip, buttons, and status line.
func (t *toolbar) draw(dst *ebiten.Image, rend *Renderer, width float64) {
	cfg := t.cfg
	vector.DrawFilledRect(dst, 0, 0, float32(width), float32(cfg.ToolbarHeight),
		cfg.CardHeaderColor.toRGBA(), false)
	vector.StrokeLine(dst, 0, float32(cfg.ToolbarHeight), float32(width), float32(cfg.ToolbarHeight),
		1, cfg.CardBorderColor.toRGBA(), false)

	t.drawButton(dst, rend, t.refreshRect, cfg.RefreshLabel, t.hovered == toolbarRefresh)
	t.drawButton(dst, rend, t.resetRect, cfg.ResetLabel, t.hovered == toolbarReset)

	face := &text.GoTextFace{Source: rend.src, Size: cfg.FontSize}
	statusW := text.Advance(t.status, face)
	rend.drawText(dst, t.status, face,
		width-statusW-10, (cfg.ToolbarHeight-cfg.FontSize)/2, cfg.TypeTextColor)
}

func (t *toolbar) drawButton(dst *ebiten.Image, rend *Renderer, r Rect, label string, hovered bool) {
	cfg := t.cfg
	bg := cfg.CardColor
	if hovered {
		bg = cfg.CardBorderColor
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		bg.toRGBA(), true)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		1, cfg.CardBorderColor.toRGBA(), true)

	face := &text.GoTextFace{Source: rend.src, Size: cfg.FontSize}
	labelW := text.Advance(label, face)
	rend.drawText(dst, label, face,
		r.X+(r.Width-labelW)/2, r.Y+(r.Height-cfg.FontSize)/2, cfg.TextColor)
}
