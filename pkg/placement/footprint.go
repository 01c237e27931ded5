package placement

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/pathway/pkg/math"
)

// Footprint is the scaled bounding size of one instance. Its length is the
// distance between consecutive instances.
type Footprint struct {
	// Extent holds the mesh bounds half-extents.
	Extent math.Vec3
	// HasMesh is false when no mesh resolved; the footprint is then a unit box.
	HasMesh bool
	Scale   math.Vec3
	Spacing float32
}

// NewFootprint builds a footprint from looked-up mesh bounds and a config.
func NewFootprint(extent math.Vec3, hasMesh bool, cfg Config) Footprint {
	return Footprint{
		Extent:  extent,
		HasMesh: hasMesh,
		Scale:   cfg.Scale,
		Spacing: cfg.Spacing,
	}
}

// Size returns the component-wise scaled extent.
func (f Footprint) Size() math.Vec3 {
	if !f.HasMesh {
		return f.Scale.Mul(math.Vec3One)
	}
	return f.Scale.Mul(f.Extent.Scale(f.Spacing))
}

// Step returns the distance between instances. A degenerate footprint steps
// by 1 so placement always terminates.
func (f Footprint) Step() float32 {
	d := f.Size().Length()
	if d <= 0 || math32.IsNaN(d) || math32.IsInf(d, 0) {
		return 1
	}
	return d
}
