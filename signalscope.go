package signalscope

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to the 8-bit color type expected by drawing primitives.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// WithAlpha returns the color with its alpha multiplied by factor.
// Used for dimming non-highlighted cards and edges.
func (c Color) WithAlpha(factor float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A * factor}
}

// UnmarshalText parses "#rgb", "#rrggbb" or "#rrggbbaa" hex notation.
// Implements encoding.TextUnmarshaler so colors can appear in TOML configs.
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("color %q: must start with '#'", s)
	}
	hex := s[1:]
	var r, g, b, a uint64
	a = 0xff
	var err error
	switch len(hex) {
	case 3:
		if r, err = strconv.ParseUint(hex[0:1]+hex[0:1], 16, 8); err == nil {
			if g, err = strconv.ParseUint(hex[1:2]+hex[1:2], 16, 8); err == nil {
				b, err = strconv.ParseUint(hex[2:3]+hex[2:3], 16, 8)
			}
		}
	case 8:
		a, err = strconv.ParseUint(hex[6:8], 16, 8)
		fallthrough
	case 6:
		if err == nil {
			if r, err = strconv.ParseUint(hex[0:2], 16, 8); err == nil {
				if g, err = strconv.ParseUint(hex[2:4], 16, 8); err == nil {
					b, err = strconv.ParseUint(hex[4:6], 16, 8)
				}
			}
		}
	default:
		return fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	*c = Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
	return nil
}

// MarshalText renders the color as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	rgba := c.toRGBA()
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)), nil
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
