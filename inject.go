package signalscope

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, fed through processPointer exactly like real mouse input.
type syntheticPointerEvent struct {
	x, y     float64
	panDown  bool
	leftDown bool
	wheel    float64
	outside  bool
}

// InjectMove queues a pointer move to the given screen coordinates with no
// buttons held. Consumed on the next frame's step.
func (i *Inspector) InjectMove(x, y float64) {
	i.injectQueue = append(i.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a left-button press followed by a release at the same
// screen coordinates. Consumes two frames.
func (i *Inspector) InjectClick(x, y float64) {
	i.injectQueue = append(i.injectQueue,
		syntheticPointerEvent{x: x, y: y, leftDown: true},
		syntheticPointerEvent{x: x, y: y},
	)
}

// InjectWheel queues a scroll of ticks wheel steps at the given screen
// coordinates.
func (i *Inspector) InjectWheel(x, y, ticks float64) {
	i.injectQueue = append(i.injectQueue, syntheticPointerEvent{x: x, y: y, wheel: ticks})
}

// InjectPanDrag queues a full pan drag with the configured pan button:
// press at (fromX, fromY), interpolated moves, release at (toX, toY).
// The sequence consumes frames+1 frames. Minimum frames is 2.
func (i *Inspector) InjectPanDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	i.injectQueue = append(i.injectQueue, syntheticPointerEvent{x: fromX, y: fromY, panDown: true})
	steps := frames - 1
	for n := 1; n <= steps; n++ {
		t := float64(n) / float64(steps)
		i.injectQueue = append(i.injectQueue, syntheticPointerEvent{
			x:       fromX + (toX-fromX)*t,
			y:       fromY + (toY-fromY)*t,
			panDown: true,
		})
	}
	i.injectQueue = append(i.injectQueue, syntheticPointerEvent{x: toX, y: toY})
}

// InjectLeave queues a pointer-left-the-window event.
func (i *Inspector) InjectLeave() {
	i.injectQueue = append(i.injectQueue, syntheticPointerEvent{outside: true})
}

// processInjected pops one queued event and feeds it through the pointer
// machine. Returns true if an event was consumed (real mouse input is
// skipped for that frame).
func (i *Inspector) processInjected() bool {
	if len(i.injectQueue) == 0 {
		return false
	}
	evt := i.injectQueue[0]
	copy(i.injectQueue, i.injectQueue[1:])
	i.injectQueue = i.injectQueue[:len(i.injectQueue)-1]

	i.processPointer(Vec2{X: evt.x, Y: evt.y}, evt.panDown, evt.leftDown, evt.wheel, !evt.outside)
	return true
}
