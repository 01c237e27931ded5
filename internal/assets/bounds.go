package assets

import "github.com/Faultbox/pathway/pkg/math"

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
	// Empty is true until a point has been added.
	Empty bool
}

// EmptyBounds returns bounds that contain nothing.
func EmptyBounds() Bounds {
	return Bounds{Empty: true}
}

// BoxBounds returns bounds centred on the origin with the given half-extents.
func BoxBounds(extent math.Vec3) Bounds {
	return Bounds{Min: extent.Scale(-1), Max: extent}
}

// Add grows the bounds to include p.
func (b *Bounds) Add(p math.Vec3) {
	if b.Empty {
		b.Min, b.Max, b.Empty = p, p, false
		return
	}
	b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
	b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
}

// Extent returns the half-size of the box.
func (b Bounds) Extent() math.Vec3 {
	if b.Empty {
		return math.Vec3{}
	}
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	if b.Empty {
		return math.Vec3{}
	}
	return b.Min.Add(b.Max).Scale(0.5)
}
