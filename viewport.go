package signalscope

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll tweens for the viewport offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps canvas space to screen space with a pan offset and a zoom
// scalar: screen = offset + canvas * zoom. It owns zoom clamping, anchored
// zoom, and the pan-drag state machine (Idle / Panning).
type Viewport struct {
	// Offset is the canvas-to-screen translation in screen pixels.
	Offset Vec2
	// Zoom is the scale factor, kept within the configured bounds.
	Zoom float64

	zoomMin        float64
	zoomMax        float64
	zoomStep       float64
	panSensitivity float64
	defaultOffset  Vec2

	panning        bool
	panStartMouse  Vec2
	panStartOffset Vec2

	scrollTween *scrollAnim
}

// NewViewport creates a viewport at the configured default offset, zoom 1.0.
func NewViewport(cfg Config) *Viewport {
	return &Viewport{
		Offset:         cfg.DefaultOffset(),
		Zoom:           1.0,
		zoomMin:        cfg.ZoomMin,
		zoomMax:        cfg.ZoomMax,
		zoomStep:       cfg.ZoomStep,
		panSensitivity: cfg.PanSensitivity,
		defaultOffset:  cfg.DefaultOffset(),
	}
}

// CanvasToScreen converts a canvas-space point to screen space.
func (v *Viewport) CanvasToScreen(p Vec2) Vec2 {
	return Vec2{X: v.Offset.X + p.X*v.Zoom, Y: v.Offset.Y + p.Y*v.Zoom}
}

// ScreenToCanvas converts a screen-space point to canvas space.
func (v *Viewport) ScreenToCanvas(p Vec2) Vec2 {
	return Vec2{X: (p.X - v.Offset.X) / v.Zoom, Y: (p.Y - v.Offset.Y) / v.Zoom}
}

// ZoomAt applies steps scroll ticks of zoom anchored at the screen-space
// mouse position: the canvas point under the cursor stays put. Returns true
// if the zoom actually changed.
func (v *Viewport) ZoomAt(mouse Vec2, steps float64) bool {
	oldZoom := v.Zoom
	newZoom := clampZoom(oldZoom+steps*v.zoomStep, v.zoomMin, v.zoomMax)
	if newZoom == oldZoom {
		return false
	}
	ratio := newZoom / oldZoom
	v.Offset = Vec2{
		X: mouse.X - (mouse.X-v.Offset.X)*ratio,
		Y: mouse.Y - (mouse.Y-v.Offset.Y)*ratio,
	}
	v.Zoom = newZoom
	return true
}

func clampZoom(z, lo, hi float64) float64 {
	if z < lo {
		return lo
	}
	if z > hi {
		return hi
	}
	return z
}

// StartPan enters the Panning state, capturing the mouse position and the
// current offset. A pan in progress cancels any scroll animation.
func (v *Viewport) StartPan(mouse Vec2) {
	v.panning = true
	v.panStartMouse = mouse
	v.panStartOffset = v.Offset
	v.scrollTween = nil
}

// DragPan updates the offset from pointer movement while panning. Returns
// true if the offset changed. No-op outside the Panning state.
func (v *Viewport) DragPan(mouse Vec2) bool {
	if !v.panning {
		return false
	}
	next := Vec2{
		X: v.panStartOffset.X + (mouse.X-v.panStartMouse.X)*v.panSensitivity,
		Y: v.panStartOffset.Y + (mouse.Y-v.panStartMouse.Y)*v.panSensitivity,
	}
	if next == v.Offset {
		return false
	}
	v.Offset = next
	return true
}

// EndPan returns to the Idle state. Safe to call when not panning.
func (v *Viewport) EndPan() {
	v.panning = false
}

// Panning reports whether a pan drag is in progress.
func (v *Viewport) Panning() bool {
	return v.panning
}

// Reset restores the default offset and zoom 1.0, cancelling any animation
// and any pan in progress.
func (v *Viewport) Reset() {
	v.scrollTween = nil
	v.panning = false
	v.Offset = v.defaultOffset
	v.Zoom = 1.0
}

// ScrollTo animates the offset to target over duration seconds.
func (v *Viewport) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.Offset.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(v.Offset.Y), float32(target.Y), duration, easeFn),
	}
}

// FocusOn animates the offset so that the canvas-space rect ends up centered
// in a screen of the given size, at the current zoom.
func (v *Viewport) FocusOn(target Rect, screen Vec2, duration float32) {
	center := target.Center()
	offset := Vec2{
		X: screen.X/2 - center.X*v.Zoom,
		Y: screen.Y/2 - center.Y*v.Zoom,
	}
	v.ScrollTo(offset, duration, ease.OutQuad)
}

// Update advances the scroll animation by dt seconds. Returns true if the
// offset moved (the caller should request a redraw).
func (v *Viewport) Update(dt float32) bool {
	if v.scrollTween == nil {
		return false
	}
	anim := v.scrollTween
	if !anim.doneX {
		val, done := anim.tweenX.Update(dt)
		v.Offset.X = float64(val)
		anim.doneX = done
	}
	if !anim.doneY {
		val, done := anim.tweenY.Update(dt)
		v.Offset.Y = float64(val)
		anim.doneY = done
	}
	if anim.doneX && anim.doneY {
		v.scrollTween = nil
	}
	return true
}
