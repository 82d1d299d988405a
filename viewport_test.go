package signalscope

import "testing"

func testViewport() *Viewport {
	return NewViewport(DefaultConfig())
}

func TestViewportDefaults(t *testing.T) {
	vp := testViewport()
	if vp.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", vp.Zoom)
	}
	if vp.Panning() {
		t.Error("Panning = true, want false")
	}
	if vp.Offset != DefaultConfig().DefaultOffset() {
		t.Errorf("Offset = %v, want default", vp.Offset)
	}
}

func TestViewportRoundtrip(t *testing.T) {
	vp := testViewport()
	vp.Offset = Vec2{X: 33, Y: -12}
	vp.Zoom = 1.7

	orig := Vec2{X: 123, Y: -456}
	back := vp.ScreenToCanvas(vp.CanvasToScreen(orig))
	if !approxEqual(back.X, orig.X, 1e-9) || !approxEqual(back.Y, orig.Y, 1e-9) {
		t.Errorf("roundtrip: got %v, want %v", back, orig)
	}
}

func TestZoomAnchoring(t *testing.T) {
	// The canvas point under the cursor must stay fixed on screen across a
	// zoom, for any anchor and any in-bounds step count.
	anchors := []Vec2{{X: 0, Y: 0}, {X: 400, Y: 300}, {X: -35, Y: 712}}
	steps := []float64{1, -1, 3, -3}

	for _, anchor := range anchors {
		for _, s := range steps {
			vp := testViewport()
			vp.Offset = Vec2{X: 57, Y: 91}

			before := vp.ScreenToCanvas(anchor)
			if !vp.ZoomAt(anchor, s) {
				t.Fatalf("ZoomAt(%v, %v) reported no change", anchor, s)
			}
			after := vp.CanvasToScreen(before)
			if !approxEqual(after.X, anchor.X, 1e-9) || !approxEqual(after.Y, anchor.Y, 1e-9) {
				t.Errorf("anchor %v steps %v: canvas point moved to %v", anchor, s, after)
			}
		}
	}
}

func TestZoomClamping(t *testing.T) {
	vp := testViewport()
	cfg := DefaultConfig()

	for i := 0; i < 100; i++ {
		vp.ZoomAt(Vec2{}, 1)
	}
	if !approxEqual(vp.Zoom, cfg.ZoomMax, 1e-9) {
		t.Errorf("Zoom = %f, want clamped to %f", vp.Zoom, cfg.ZoomMax)
	}
	// A tick at the bound is a no-op and must report no change.
	if vp.ZoomAt(Vec2{}, 1) {
		t.Error("ZoomAt at max reported a change")
	}

	for i := 0; i < 100; i++ {
		vp.ZoomAt(Vec2{}, -1)
	}
	if !approxEqual(vp.Zoom, cfg.ZoomMin, 1e-9) {
		t.Errorf("Zoom = %f, want clamped to %f", vp.Zoom, cfg.ZoomMin)
	}
}

func TestPanStateMachine(t *testing.T) {
	vp := testViewport()
	start := vp.Offset

	// DragPan outside Panning is a no-op.
	if vp.DragPan(Vec2{X: 500, Y: 500}) {
		t.Error("DragPan while idle reported a change")
	}

	vp.StartPan(Vec2{X: 100, Y: 100})
	if !vp.Panning() {
		t.Fatal("Panning = false after StartPan")
	}
	if !vp.DragPan(Vec2{X: 130, Y: 80}) {
		t.Error("DragPan reported no change")
	}
	want := Vec2{X: start.X + 30, Y: start.Y - 20}
	if vp.Offset != want {
		t.Errorf("Offset = %v, want %v", vp.Offset, want)
	}

	// Dragging to the same position again is a no-op.
	if vp.DragPan(Vec2{X: 130, Y: 80}) {
		t.Error("repeated DragPan reported a change")
	}

	vp.EndPan()
	if vp.Panning() {
		t.Error("Panning = true after EndPan")
	}
}

func TestPanSensitivity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PanSensitivity = 0.5
	vp := NewViewport(cfg)
	start := vp.Offset

	vp.StartPan(Vec2{})
	vp.DragPan(Vec2{X: 100, Y: 40})
	want := Vec2{X: start.X + 50, Y: start.Y + 20}
	if vp.Offset != want {
		t.Errorf("Offset = %v, want %v", vp.Offset, want)
	}
}

func TestViewportReset(t *testing.T) {
	vp := testViewport()
	vp.ZoomAt(Vec2{X: 200, Y: 200}, 5)
	vp.StartPan(Vec2{})
	vp.DragPan(Vec2{X: 77, Y: 33})

	vp.Reset()
	if vp.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", vp.Zoom)
	}
	if vp.Offset != DefaultConfig().DefaultOffset() {
		t.Errorf("Offset = %v, want default", vp.Offset)
	}
	if vp.Panning() {
		t.Error("Panning = true after Reset")
	}
}

func TestScrollToAnimation(t *testing.T) {
	vp := testViewport()
	vp.Offset = Vec2{}
	vp.FocusOn(Rect{X: 100, Y: 100, Width: 50, Height: 50}, Vec2{X: 800, Y: 600}, 0.5)

	if !vp.Update(0.25) {
		t.Fatal("Update during scroll reported no movement")
	}
	moved := vp.Offset
	if moved.X == 0 && moved.Y == 0 {
		t.Error("offset did not move mid-animation")
	}

	vp.Update(1.0) // run past the end
	// Target centers (125,125) at zoom 1 in an 800x600 screen.
	want := Vec2{X: 400 - 125, Y: 300 - 125}
	if !approxEqual(vp.Offset.X, want.X, 0.5) || !approxEqual(vp.Offset.Y, want.Y, 0.5) {
		t.Errorf("final Offset = %v, want ~%v", vp.Offset, want)
	}
	if vp.Update(0.1) {
		t.Error("Update after animation end reported movement")
	}
}

func TestStartPanCancelsScroll(t *testing.T) {
	vp := testViewport()
	vp.FocusOn(Rect{X: 500, Y: 500, Width: 10, Height: 10}, Vec2{X: 800, Y: 600}, 1)
	vp.StartPan(Vec2{})
	if vp.Update(0.1) {
		t.Error("scroll animation survived StartPan")
	}
}
