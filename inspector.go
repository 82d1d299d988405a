package signalscope

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Inspector is the top-level tool: it owns the graph, viewport, interaction
// state, and renderer, and implements ebiten.Game. All state lives on the
// single UI thread; a scan is a synchronous traversal and the graph is only
// ever swapped as a whole, so the renderer never sees a half-built graph.
type Inspector struct {
	cfg  Config
	log  *log.Logger
	root TreeObject

	graph *Graph
	vp    *Viewport
	ix    *Interaction
	rend  *Renderer
	bar   *toolbar

	// canvas caches the last rendered frame; it is only repainted when
	// needsRedraw is set by a state mutation. Idle frames just blit it.
	canvas      *ebiten.Image
	needsRedraw bool

	width, height int

	// Previous-frame button states, for edge detection.
	panHeld  bool
	leftHeld bool

	injectQueue []syntheticPointerEvent
}

// New creates an inspector over the given tree and immediately performs the
// first scan.
func New(root TreeObject, cfg Config) (*Inspector, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	rend, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}
	level := log.InfoLevel
	if cfg.DebugSummary {
		level = log.DebugLevel
	}
	ins := &Inspector{
		cfg:    cfg,
		log:    newLogger(os.Stderr, level),
		root:   root,
		vp:     NewViewport(cfg),
		ix:     NewInteraction(cfg),
		rend:   rend,
		bar:    newToolbar(cfg),
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
	}
	ins.Refresh()
	return ins, nil
}

// Graph returns the current graph. Valid until the next Refresh.
func (i *Inspector) Graph() *Graph { return i.graph }

// Viewport returns the inspector's viewport state.
func (i *Inspector) Viewport() *Viewport { return i.vp }

// Interaction returns the inspector's interaction state.
func (i *Inspector) Interaction() *Interaction { return i.ix }

// Refresh rescans the tree and rebuilds the graph. Layout runs, the viewport
// resets, and all interaction indices are invalidated atomically with the
// graph swap; stale indices must never survive into the new graph.
func (i *Inspector) Refresh() {
	var stats scanStats
	stats.nodes = countNodes(i.root)

	t0 := time.Now()
	graph := ScanPath(i.root, i.cfg.ScanRoot)
	stats.scanTime = time.Since(t0)

	t0 = time.Now()
	LayoutGraph(graph, i.cfg)
	stats.layoutTime = time.Since(t0)

	stats.cards = len(graph.Cards)
	stats.edges = len(graph.Edges)
	stats.omitted = graph.Omitted

	i.graph = graph
	i.ix.Invalidate()
	i.vp.Reset()
	i.bar.setStatus(graph)
	i.needsRedraw = true

	if i.cfg.DebugSummary {
		logScanSummary(i.log, stats)
	}
}

// ResetView restores the default viewport transform, animated when the
// animate_reset option is on.
func (i *Inspector) ResetView() {
	if i.cfg.AnimateReset {
		i.vp.Zoom = 1.0
		i.vp.FocusOn(i.contentBounds(), Vec2{X: float64(i.width), Y: float64(i.height)},
			float32(i.cfg.ResetDuration))
	} else {
		i.vp.Reset()
	}
	i.needsRedraw = true
}

// contentBounds returns the canvas-space bounding rect of all cards.
func (i *Inspector) contentBounds() Rect {
	if len(i.graph.Cards) == 0 {
		return Rect{}
	}
	b := i.graph.Cards[0].Rect
	for _, card := range i.graph.Cards[1:] {
		r := card.Rect
		right := b.X + b.Width
		bottom := b.Y + b.Height
		if r.X < b.X {
			b.X = r.X
		}
		if r.Y < b.Y {
			b.Y = r.Y
		}
		if r.X+r.Width > right {
			right = r.X + r.Width
		}
		if r.Y+r.Height > bottom {
			bottom = r.Y + r.Height
		}
		b.Width = right - b.X
		b.Height = bottom - b.Y
	}
	return b
}

// Update implements ebiten.Game. Input never triggers a rescan; it only
// mutates viewport or interaction state and requests redraws.
func (i *Inspector) Update() error {
	i.step(1.0 / float32(ebiten.TPS()))
	return nil
}

// step advances one frame: scroll animation, then one injected or real
// pointer event.
func (i *Inspector) step(dt float32) {
	if i.vp.Update(dt) {
		i.needsRedraw = true
	}
	if i.processInjected() {
		return
	}
	i.readInput()
}

// readInput samples the real mouse state and feeds the pointer machine.
func (i *Inspector) readInput() {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}
	inside := mx >= 0 && my >= 0 && mx < i.width && my < i.height

	_, wheelY := ebiten.Wheel()
	panDown := ebiten.IsMouseButtonPressed(panMouseButton(i.cfg.PanButton))
	leftDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	i.processPointer(pos, panDown, leftDown, wheelY, inside)
}

// panMouseButton maps the pan_button option to an ebiten button.
func panMouseButton(name string) ebiten.MouseButton {
	switch name {
	case "left":
		return ebiten.MouseButtonLeft
	case "right":
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonMiddle
	}
}

// processPointer runs the full per-frame pointer state machine: toolbar
// interaction, anchored zoom, the Idle/Panning pan machine, hover tracking,
// and click selection. pos is in screen space.
func (i *Inspector) processPointer(pos Vec2, panDown, leftDown bool, wheelY float64, inside bool) {
	defer func() {
		i.panHeld = panDown
		i.leftHeld = leftDown
	}()

	if !inside {
		// Defensive recovery: a pan must never stay stuck after the pointer
		// leaves the tracked area.
		i.vp.EndPan()
		if i.ix.ClearHover() {
			i.needsRedraw = true
		}
		if i.bar.clearHover() {
			i.needsRedraw = true
		}
		return
	}

	if i.cfg.ShowToolbar && pos.Y < i.cfg.ToolbarHeight {
		i.vp.EndPan()
		if i.ix.ClearHover() {
			i.needsRedraw = true
		}
		if i.bar.hoverAt(pos) {
			i.needsRedraw = true
		}
		if leftDown && !i.leftHeld {
			switch i.bar.hitAt(pos) {
			case toolbarRefresh:
				i.Refresh()
			case toolbarReset:
				i.ResetView()
			}
		}
		return
	}
	if i.bar.clearHover() {
		i.needsRedraw = true
	}

	if wheelY != 0 {
		if i.vp.ZoomAt(pos, wheelY) {
			i.needsRedraw = true
		}
	}

	// Pan state machine: Idle <-> Panning on the designated button.
	switch {
	case panDown && !i.panHeld:
		i.vp.StartPan(pos)
	case panDown && i.vp.Panning():
		if i.vp.DragPan(pos) {
			i.needsRedraw = true
		}
	case !panDown && i.vp.Panning():
		i.vp.EndPan()
	}

	canvasPt := i.vp.ScreenToCanvas(pos)

	if !i.vp.Panning() {
		if i.ix.HoverAt(i.graph, canvasPt, i.vp.Zoom) {
			i.needsRedraw = true
		}
	}

	if leftDown && !i.leftHeld {
		if i.ix.ClickAt(i.graph, canvasPt) {
			i.needsRedraw = true
		}
	}
}

// Draw implements ebiten.Game. The frame is only repainted when something
// changed; otherwise the cached canvas is blitted as-is.
func (i *Inspector) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if i.canvas == nil || i.canvas.Bounds().Dx() != w || i.canvas.Bounds().Dy() != h {
		i.canvas = ebiten.NewImage(w, h)
		i.needsRedraw = true
	}

	if i.needsRedraw {
		t0 := time.Now()
		stats := i.rend.Draw(i.canvas, i.graph, i.vp, i.ix)
		if i.cfg.ShowToolbar {
			i.bar.draw(i.canvas, i.rend, float64(w))
		}
		stats.drawTime = time.Since(t0)
		if i.cfg.DebugSummary {
			logDrawSummary(i.log, stats)
		}
		i.needsRedraw = false
	}

	screen.DrawImage(i.canvas, nil)
}

// Layout implements ebiten.Game.
func (i *Inspector) Layout(outsideWidth, outsideHeight int) (int, int) {
	i.width = outsideWidth
	i.height = outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the inspector window and blocks until it is closed.
func (i *Inspector) Run() error {
	ebiten.SetWindowSize(i.cfg.WindowWidth, i.cfg.WindowHeight)
	ebiten.SetWindowTitle(i.cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(i); err != nil {
		return fmt.Errorf("run inspector: %w", err)
	}
	return nil
}
