// Package spline evaluates piecewise paths through control points by
// arc-length distance.
package spline

import (
	"sort"

	"github.com/Faultbox/pathway/pkg/math"
)

// CurveType selects how segments between control points are interpolated.
type CurveType int

const (
	// Linear joins control points with straight segments.
	Linear CurveType = iota
	// Curve passes a uniform Catmull-Rom curve through the control points.
	Curve
)

// String returns the name used in path definition files.
func (c CurveType) String() string {
	switch c {
	case Linear:
		return "linear"
	case Curve:
		return "curve"
	default:
		return "unknown"
	}
}

// ParseCurveType converts a name back to a CurveType. Unknown names fall back
// to Linear, the tool's default.
func ParseCurveType(name string) CurveType {
	switch name {
	case "curve", "smooth", "catmull-rom":
		return Curve
	default:
		return Linear
	}
}

// Space selects the coordinate space positions are returned in.
type Space int

const (
	// Local positions are relative to the spline's origin.
	Local Space = iota
	// World positions include the origin.
	World
)

// samplesPerCurve is the arc-length table resolution of a curved segment.
const samplesPerCurve = 16

// sample maps a cumulative distance to a segment parameter.
type sample struct {
	dist    float32
	segment int
	t       float32
}

// Spline is an immutable path through control points.
type Spline struct {
	points    []math.Vec3
	curveType CurveType
	closed    bool
	origin    math.Vec3

	samples []sample
	length  float32
}

// New builds a spline. An empty point list is replaced by a single point at
// the local origin.
func New(points []math.Vec3, curveType CurveType, closed bool) *Spline {
	if len(points) == 0 {
		points = []math.Vec3{{}}
	}
	s := &Spline{
		points:    append([]math.Vec3(nil), points...),
		curveType: curveType,
		closed:    closed,
	}
	s.buildTable()
	return s
}

// WithOrigin returns a copy of the spline placed at origin in world space.
func (s *Spline) WithOrigin(origin math.Vec3) *Spline {
	c := *s
	c.origin = origin
	return &c
}

// Origin returns the world-space origin.
func (s *Spline) Origin() math.Vec3 { return s.origin }

// CurveType returns the segment interpolation mode.
func (s *Spline) CurveType() CurveType { return s.curveType }

// Closed reports whether the last point connects back to the first.
func (s *Spline) Closed() bool { return s.closed }

// PointCount returns the number of control points.
func (s *Spline) PointCount() int { return len(s.points) }

// Point returns control point i in local space.
func (s *Spline) Point(i int) math.Vec3 { return s.points[i] }

// SegmentCount returns the number of segments between control points.
func (s *Spline) SegmentCount() int {
	n := len(s.points)
	if n < 2 {
		return 0
	}
	if s.closed {
		return n
	}
	return n - 1
}

// Length returns the total arc length.
func (s *Spline) Length() float32 {
	return s.length
}

// PositionAtDistance returns the point dist along the path. Distances outside
// [0, Length] are clamped.
func (s *Spline) PositionAtDistance(dist float32, space Space) math.Vec3 {
	p := s.localAt(dist)
	if space == World {
		return p.Add(s.origin)
	}
	return p
}

func (s *Spline) localAt(dist float32) math.Vec3 {
	if len(s.samples) < 2 {
		return s.points[0]
	}
	if dist <= 0 {
		return s.points[0]
	}
	if dist >= s.length {
		last := s.samples[len(s.samples)-1]
		return s.evaluate(last.segment, last.t)
	}

	// First sample at or beyond dist; the one before it starts the interval.
	i := sort.Search(len(s.samples), func(i int) bool {
		return s.samples[i].dist >= dist
	})
	hi := s.samples[i]
	lo := s.samples[i-1]

	span := hi.dist - lo.dist
	if span <= 0 {
		return s.evaluate(hi.segment, hi.t)
	}
	frac := (dist - lo.dist) / span

	if lo.segment != hi.segment {
		// hi is the start of the next segment; finish lo's segment.
		return s.evaluate(lo.segment, lo.t+frac*(1-lo.t))
	}
	return s.evaluate(lo.segment, lo.t+frac*(hi.t-lo.t))
}

// buildTable samples every segment and accumulates distance.
func (s *Spline) buildTable() {
	segments := s.SegmentCount()
	if segments == 0 {
		s.samples = nil
		s.length = 0
		return
	}

	steps := 1
	if s.curveType == Curve {
		steps = samplesPerCurve
	}

	s.samples = make([]sample, 0, segments*steps+1)
	s.samples = append(s.samples, sample{dist: 0, segment: 0, t: 0})

	var total float32
	prev := s.evaluate(0, 0)
	for seg := 0; seg < segments; seg++ {
		for k := 1; k <= steps; k++ {
			t := float32(k) / float32(steps)
			p := s.evaluate(seg, t)
			total += p.Distance(prev)
			prev = p
			if k == steps && seg+1 < segments {
				// Record the boundary as the start of the next segment.
				s.samples = append(s.samples, sample{dist: total, segment: seg + 1, t: 0})
				continue
			}
			s.samples = append(s.samples, sample{dist: total, segment: seg, t: t})
		}
	}
	s.length = total
}

// evaluate returns the point at parameter t in [0, 1] along segment seg.
func (s *Spline) evaluate(seg int, t float32) math.Vec3 {
	p1 := s.point(seg)
	p2 := s.point(seg + 1)
	if s.curveType == Linear {
		return p1.Lerp(p2, t)
	}
	return catmullRom(s.point(seg-1), p1, p2, s.point(seg+2), t)
}

// point returns control point i, wrapping on closed paths and mirroring the
// neighbour past either end of an open path.
func (s *Spline) point(i int) math.Vec3 {
	n := len(s.points)
	if s.closed {
		return s.points[((i%n)+n)%n]
	}
	switch {
	case i < 0:
		// Reflect p1 across p0 so the end tangent follows the first segment.
		return s.points[0].Scale(2).Sub(s.points[min(1, n-1)])
	case i >= n:
		return s.points[n-1].Scale(2).Sub(s.points[max(n-2, 0)])
	default:
		return s.points[i]
	}
}

// catmullRom evaluates a uniform Catmull-Rom segment between p1 and p2.
func catmullRom(p0, p1, p2, p3 math.Vec3, t float32) math.Vec3 {
	t2 := t * t
	t3 := t2 * t

	a := p1.Scale(2)
	b := p2.Sub(p0).Scale(t)
	c := p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(t2)
	d := p1.Scale(3).Sub(p0).Sub(p2.Scale(3)).Add(p3).Scale(t3)

	return a.Add(b).Add(c).Add(d).Scale(0.5)
}
