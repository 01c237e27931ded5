// Package debug provides debug visualization geometry.
package debug

import "github.com/Faultbox/pathway/pkg/math"

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Common debug colors.
var (
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Yellow = Color{1, 1, 0, 1}
	White  = Color{1, 1, 1, 1}
)

// Line is one colored segment.
type Line struct {
	Start, End math.Vec3
	Color      Color
}

// Arrow builds a shaft from start to end plus four head strokes of length
// size around the tip. A degenerate arrow is just its (empty) shaft.
func Arrow(start, end math.Vec3, size float32, color Color) []Line {
	lines := []Line{{Start: start, End: end, Color: color}}

	dir := end.Sub(start).Normalize()
	if dir == (math.Vec3{}) || size <= 0 {
		return lines
	}

	// Any vector not parallel to dir gives a perpendicular basis.
	ref := math.Vec3Up
	if abs(dir.Dot(ref)) > 0.99 {
		ref = math.Vec3Forward
	}
	side := dir.Cross(ref).Normalize()
	up := side.Cross(dir).Normalize()

	back := end.Sub(dir.Scale(size))
	for _, perp := range []math.Vec3{side, side.Scale(-1), up, up.Scale(-1)} {
		lines = append(lines, Line{Start: end, End: back.Add(perp.Scale(size * 0.5)), Color: color})
	}
	return lines
}

// Polyline joins consecutive points.
func Polyline(points []math.Vec3, color Color) []Line {
	if len(points) < 2 {
		return nil
	}
	lines := make([]Line, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		lines = append(lines, Line{Start: points[i-1], End: points[i], Color: color})
	}
	return lines
}

// LineVertices flattens lines to [x, y, z, r, g, b, a] per vertex, two
// vertices per line.
func LineVertices(lines []Line) []float32 {
	out := make([]float32, 0, len(lines)*14)
	for _, l := range lines {
		out = append(out,
			l.Start.X, l.Start.Y, l.Start.Z, l.Color[0], l.Color[1], l.Color[2], l.Color[3],
			l.End.X, l.End.Y, l.End.Z, l.Color[0], l.Color[1], l.Color[2], l.Color[3],
		)
	}
	return out
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
