// Package pathway is the editor-side tool that turns a path definition into
// placed mesh instances, start and end markers and debug arrows.
package pathway

import (
	"github.com/Faultbox/pathway/pkg/math"
	"github.com/Faultbox/pathway/pkg/placement"
	"github.com/Faultbox/pathway/pkg/spline"
)

// Definition is everything the tool exposes for editing.
type Definition struct {
	Name string `yaml:"name"`
	// Origin is the tool's location in the world.
	Origin    math.Vec3   `yaml:"origin"`
	Points    []math.Vec3 `yaml:"points"`
	CurveType string      `yaml:"curve_type"`

	Mesh      string           `yaml:"mesh"`
	Placement placement.Config `yaml:"placement"`

	StartMarker bool `yaml:"start_marker"`
	EndMarker   bool `yaml:"end_marker"`
	ShowDebug   bool `yaml:"show_debug"`
}

// NewDefinition returns the tool's initial state: a single point at the
// origin, linear segments, unit scale and no offset.
func NewDefinition() Definition {
	return Definition{
		Points:    []math.Vec3{{}},
		CurveType: spline.Linear.String(),
		Placement: placement.DefaultConfig(),
	}
}

// Spline builds the path described by the definition. The placement config's
// closed-loop flag closes the spline as well.
func (d Definition) Spline() *spline.Spline {
	return spline.New(d.Points, spline.ParseCurveType(d.CurveType), d.Placement.ClosedLoop).WithOrigin(d.Origin)
}

// SamplePath returns world-space points along the path, at least two per
// segment, for drawing it as a polyline.
func (d Definition) SamplePath(perSegment int) []math.Vec3 {
	s := d.Spline()
	n := max(perSegment, 2) * max(s.SegmentCount(), 1)
	length := s.Length()

	points := make([]math.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, s.PositionAtDistance(length*float32(i)/float32(n), spline.World))
	}
	return points
}
