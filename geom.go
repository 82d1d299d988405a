package signalscope

// Pure curve geometry shared by the renderer (stroking) and the interaction
// controller (hit-testing). Both must sample the same curve or hover would
// disagree with what is on screen.

// cubicBezierPoint evaluates a cubic bezier at t in [0, 1].
func cubicBezierPoint(p0, c0, c1, p1 Vec2, t float64) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*p0.X + b1*c0.X + b2*c1.X + b3*p1.X,
		Y: b0*p0.Y + b1*c0.Y + b2*c1.Y + b3*p1.Y,
	}
}

// edgeControlPoints computes the two control points for an edge curve.
// Each control point is pushed horizontally away from its port by a fraction
// of the ports' horizontal distance, capped at maxOffset, producing an
// S-curve whose bend grows with horizontal separation.
func edgeControlPoints(from, to Vec2, fraction, maxOffset float64) (c0, c1 Vec2) {
	dx := to.X - from.X
	if dx < 0 {
		dx = -dx
	}
	offset := dx * fraction
	if offset > maxOffset {
		offset = maxOffset
	}
	c0 = Vec2{X: from.X + offset, Y: from.Y}
	c1 = Vec2{X: to.X - offset, Y: to.Y}
	return c0, c1
}

// sampleBezier appends samples+1 points of the curve to buf and returns it.
// buf is reused across frames to avoid per-call allocations.
func sampleBezier(buf []Vec2, p0, c0, c1, p1 Vec2, samples int) []Vec2 {
	if samples < 1 {
		samples = 1
	}
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		buf = append(buf, cubicBezierPoint(p0, c0, c1, p1, t))
	}
	return buf
}

// distSqToSegment returns the squared distance from p to segment ab.
func distSqToSegment(p, a, b Vec2) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	apx := p.X - a.X
	apy := p.Y - a.Y

	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return apx*apx + apy*apy
	}
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx := p.X - (a.X + abx*t)
	dy := p.Y - (a.Y + aby*t)
	return dx*dx + dy*dy
}

// pointNearCurve reports whether p lies within threshold of the sampled
// bezier defined by p0/c0/c1/p1. The curve is flattened into samples
// segments and the nearest one decides.
func pointNearCurve(p, p0, c0, c1, p1 Vec2, samples int, threshold float64) bool {
	if samples < 1 {
		samples = 1
	}
	thresholdSq := threshold * threshold
	prev := p0
	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)
		cur := cubicBezierPoint(p0, c0, c1, p1, t)
		if distSqToSegment(p, prev, cur) <= thresholdSq {
			return true
		}
		prev = cur
	}
	return false
}
