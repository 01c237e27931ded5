package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/pathway/pkg/math"
)

const eps = 1e-3

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, eps, "Y of %v", got)
	assert.InDelta(t, want.Z, got.Z, eps, "Z of %v", got)
}

func TestEmptyPointsDefaultToOrigin(t *testing.T) {
	s := New(nil, Linear, false)

	require.Equal(t, 1, s.PointCount())
	assert.Equal(t, 0, s.SegmentCount())
	assert.Equal(t, float32(0), s.Length())
	assertVec(t, math.Vec3{}, s.PositionAtDistance(5, Local))
}

func TestSinglePoint(t *testing.T) {
	s := New([]math.Vec3{{X: 1, Y: 2, Z: 3}}, Curve, true)

	assert.Equal(t, float32(0), s.Length())
	assert.Equal(t, 0, s.SegmentCount())
	assertVec(t, math.Vec3{X: 1, Y: 2, Z: 3}, s.PositionAtDistance(0, Local))
}

func TestLinearLength(t *testing.T) {
	s := New([]math.Vec3{{}, {X: 10}, {X: 10, Y: 5}}, Linear, false)

	assert.InDelta(t, 15, s.Length(), eps)
	assert.Equal(t, 2, s.SegmentCount())
}

func TestLinearClosedLength(t *testing.T) {
	s := New([]math.Vec3{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}}, Linear, true)

	assert.InDelta(t, 40, s.Length(), eps)
	assert.Equal(t, 4, s.SegmentCount())
	// The closing segment runs from the last point back to the first.
	assertVec(t, math.Vec3{Y: 5}, s.PositionAtDistance(35, Local))
	assertVec(t, math.Vec3{}, s.PositionAtDistance(40, Local))
}

func TestLinearPositionAtDistance(t *testing.T) {
	s := New([]math.Vec3{{}, {X: 10}, {X: 10, Y: 5}}, Linear, false)

	tests := []struct {
		dist float32
		want math.Vec3
	}{
		{-3, math.Vec3{}},
		{0, math.Vec3{}},
		{2.5, math.Vec3{X: 2.5}},
		{10, math.Vec3{X: 10}},
		{12, math.Vec3{X: 10, Y: 2}},
		{15, math.Vec3{X: 10, Y: 5}},
		{99, math.Vec3{X: 10, Y: 5}},
	}
	for _, tt := range tests {
		assertVec(t, tt.want, s.PositionAtDistance(tt.dist, Local))
	}
}

func TestWorldSpaceAddsOrigin(t *testing.T) {
	s := New([]math.Vec3{{}, {X: 10}}, Linear, false).WithOrigin(math.Vec3{X: 100, Z: 50})

	assertVec(t, math.Vec3{X: 4}, s.PositionAtDistance(4, Local))
	assertVec(t, math.Vec3{X: 104, Z: 50}, s.PositionAtDistance(4, World))
}

func TestCurvePassesThroughControlPoints(t *testing.T) {
	points := []math.Vec3{{}, {X: 10, Y: 10}, {X: 20}, {X: 30, Y: 10, Z: 5}}
	s := New(points, Curve, false)

	// Catmull-Rom interpolates: segment boundaries are the control points.
	for i := 0; i < s.SegmentCount(); i++ {
		assertVec(t, points[i], s.evaluate(i, 0))
	}
	assertVec(t, points[3], s.evaluate(2, 1))
	assertVec(t, points[0], s.PositionAtDistance(0, Local))
	assertVec(t, points[3], s.PositionAtDistance(s.Length(), Local))
}

func TestCurveLongerThanChords(t *testing.T) {
	points := []math.Vec3{{}, {X: 10, Y: 10}, {X: 20}}
	curve := New(points, Curve, false)
	linear := New(points, Linear, false)

	assert.Greater(t, curve.Length(), linear.Length())
}

func TestCurveOfCollinearPointsIsStraight(t *testing.T) {
	s := New([]math.Vec3{{}, {X: 10}, {X: 20}}, Curve, false)

	assert.InDelta(t, 20, s.Length(), 0.01)
	p := s.PositionAtDistance(7, Local)
	assert.InDelta(t, 7, p.X, 0.05)
	assert.InDelta(t, 0, p.Y, eps)
}

func TestPositionMonotonicAlongCurve(t *testing.T) {
	s := New([]math.Vec3{{}, {X: 10, Y: 10}, {X: 20}, {X: 30, Y: -10}}, Curve, true)
	l := s.Length()

	prev := s.PositionAtDistance(0, Local)
	var walked float32
	for d := float32(0.5); d <= l; d += 0.5 {
		p := s.PositionAtDistance(d, Local)
		walked += p.Distance(prev)
		prev = p
	}
	assert.InDelta(t, l, walked, float64(l*0.02))
}

func TestParseCurveType(t *testing.T) {
	assert.Equal(t, Curve, ParseCurveType("curve"))
	assert.Equal(t, Curve, ParseCurveType("smooth"))
	assert.Equal(t, Linear, ParseCurveType("linear"))
	assert.Equal(t, Linear, ParseCurveType("bogus"))
	assert.Equal(t, "curve", Curve.String())
}
