package signalscope

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCubicBezierEndpoints(t *testing.T) {
	p0 := Vec2{X: 10, Y: 20}
	c0 := Vec2{X: 40, Y: 0}
	c1 := Vec2{X: 60, Y: 100}
	p1 := Vec2{X: 90, Y: 50}

	start := cubicBezierPoint(p0, c0, c1, p1, 0)
	if !approxEqual(start.X, p0.X, epsilon) || !approxEqual(start.Y, p0.Y, epsilon) {
		t.Errorf("t=0: got %v, want %v", start, p0)
	}
	end := cubicBezierPoint(p0, c0, c1, p1, 1)
	if !approxEqual(end.X, p1.X, epsilon) || !approxEqual(end.Y, p1.Y, epsilon) {
		t.Errorf("t=1: got %v, want %v", end, p1)
	}
}

func TestCubicBezierStraightLine(t *testing.T) {
	// Collinear control points degenerate to the segment itself.
	p0 := Vec2{X: 0, Y: 0}
	p1 := Vec2{X: 30, Y: 0}
	mid := cubicBezierPoint(p0, Vec2{X: 10, Y: 0}, Vec2{X: 20, Y: 0}, p1, 0.5)
	if !approxEqual(mid.X, 15, epsilon) || !approxEqual(mid.Y, 0, epsilon) {
		t.Errorf("midpoint = %v, want (15,0)", mid)
	}
}

func TestEdgeControlPointsOffset(t *testing.T) {
	from := Vec2{X: 100, Y: 50}
	to := Vec2{X: 300, Y: 150}
	c0, c1 := edgeControlPoints(from, to, 0.5, 1000)
	// Horizontal distance 200, fraction 0.5: offset 100 each way.
	if !approxEqual(c0.X, 200, epsilon) || !approxEqual(c0.Y, 50, epsilon) {
		t.Errorf("c0 = %v, want (200,50)", c0)
	}
	if !approxEqual(c1.X, 200, epsilon) || !approxEqual(c1.Y, 150, epsilon) {
		t.Errorf("c1 = %v, want (200,150)", c1)
	}
}

func TestEdgeControlPointsCapped(t *testing.T) {
	from := Vec2{X: 0, Y: 0}
	to := Vec2{X: 1000, Y: 0}
	c0, _ := edgeControlPoints(from, to, 0.5, 140)
	if !approxEqual(c0.X, 140, epsilon) {
		t.Errorf("c0.X = %f, want capped 140", c0.X)
	}
}

func TestDistSqToSegment(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	// Perpendicular foot inside the segment.
	if d := distSqToSegment(Vec2{X: 5, Y: 3}, a, b); !approxEqual(d, 9, epsilon) {
		t.Errorf("inside: distSq = %f, want 9", d)
	}
	// Beyond endpoint b: distance to b itself.
	if d := distSqToSegment(Vec2{X: 13, Y: 4}, a, b); !approxEqual(d, 25, epsilon) {
		t.Errorf("beyond b: distSq = %f, want 25", d)
	}
	// Degenerate zero-length segment.
	if d := distSqToSegment(Vec2{X: 3, Y: 4}, a, a); !approxEqual(d, 25, epsilon) {
		t.Errorf("degenerate: distSq = %f, want 25", d)
	}
}

func TestPointNearCurve(t *testing.T) {
	// Straight horizontal "curve" from (0,0) to (100,0).
	p0 := Vec2{X: 0, Y: 0}
	p1 := Vec2{X: 100, Y: 0}
	c0 := Vec2{X: 30, Y: 0}
	c1 := Vec2{X: 70, Y: 0}

	if !pointNearCurve(Vec2{X: 50, Y: 4}, p0, c0, c1, p1, 24, 5) {
		t.Error("point 4 away with threshold 5: want near")
	}
	if pointNearCurve(Vec2{X: 50, Y: 8}, p0, c0, c1, p1, 24, 5) {
		t.Error("point 8 away with threshold 5: want not near")
	}
}

func TestSampleBezierCount(t *testing.T) {
	buf := sampleBezier(nil, Vec2{}, Vec2{X: 1}, Vec2{X: 2}, Vec2{X: 3}, 8)
	if len(buf) != 9 {
		t.Errorf("len = %d, want 9", len(buf))
	}
	// Buffer reuse keeps capacity.
	buf2 := sampleBezier(buf[:0], Vec2{}, Vec2{X: 1}, Vec2{X: 2}, Vec2{X: 3}, 8)
	if len(buf2) != 9 {
		t.Errorf("reused len = %d, want 9", len(buf2))
	}
}
