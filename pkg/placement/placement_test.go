package placement

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/pathway/pkg/math"
	"github.com/Faultbox/pathway/pkg/spline"
)

// straightPath runs along +X from the origin.
type straightPath struct {
	length float32
}

func (p straightPath) Length() float32 { return p.length }

func (p straightPath) PositionAtDistance(dist float32, _ spline.Space) math.Vec3 {
	return math.Vec3{X: min(max(dist, 0), p.length)}
}

// footprintWithStep returns a mesh footprint whose step is exactly step.
func footprintWithStep(step float32) Footprint {
	return Footprint{
		Extent:  math.Vec3{X: step / 2},
		HasMesh: true,
		Scale:   math.Vec3One,
		Spacing: 2,
	}
}

func distances(r Result) []float32 {
	out := make([]float32, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = p.Distance
	}
	return out
}

func TestCountModeFloor(t *testing.T) {
	tests := []struct {
		name   string
		length float32
		step   float32
		want   []float32
	}{
		{"remainder", 10, 3, []float32{0, 3, 6}},
		{"exact multiple", 9, 3, []float32{0, 3, 6}},
		{"shorter than step", 2, 3, []float32{}},
		{"fractional step", 5, 1.25, []float32{0, 1.25, 2.5, 3.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewSeeded(1).Compute(straightPath{tt.length}, footprintWithStep(tt.step), DefaultConfig())
			assert.Equal(t, tt.want, distances(res))
			for i, p := range res.Placements {
				assert.Equal(t, i, p.Index)
				assert.InDelta(t, p.Distance, p.Transform.Location.X, 1e-5)
			}
		})
	}
}

func TestEvenSpreadCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EvenSpread = true

	tests := []struct {
		name   string
		length float32
		step   float32
		want   []float32
	}{
		// ceil(10/3) = 4
		{"remainder", 10, 3, []float32{0, 3, 6, 9}},
		// 9/3 + 1 = 4
		{"exact multiple", 9, 3, []float32{0, 3, 6, 9}},
		{"shorter than step", 2, 3, []float32{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewSeeded(1).Compute(straightPath{tt.length}, footprintWithStep(tt.step), cfg)
			assert.Equal(t, tt.want, distances(res))
		})
	}
}

func TestModesDifferOnExactMultiple(t *testing.T) {
	path := straightPath{12}
	fp := footprintWithStep(4)

	count := NewSeeded(1).Compute(path, fp, DefaultConfig())
	cfg := DefaultConfig()
	cfg.EvenSpread = true
	even := NewSeeded(1).Compute(path, fp, cfg)

	assert.Len(t, count.Placements, 3)
	assert.Len(t, even.Placements, 4)
}

func TestZeroLengthPathYieldsOne(t *testing.T) {
	for _, even := range []bool{false, true} {
		for _, closed := range []bool{false, true} {
			cfg := DefaultConfig()
			cfg.EvenSpread = even
			cfg.ClosedLoop = closed

			res := NewSeeded(1).Compute(straightPath{0}, footprintWithStep(3), cfg)
			require.Len(t, res.Placements, 1, "even=%v closed=%v", even, closed)
			assert.Equal(t, float32(0), res.Placements[0].Distance)
			assert.Equal(t, float32(0), res.LastDistance)
		}
	}
}

func TestSinglePointSpline(t *testing.T) {
	s := spline.New([]math.Vec3{{X: 5, Y: 5}}, spline.Linear, false)

	res := NewSeeded(1).Compute(s, footprintWithStep(3), DefaultConfig())
	require.Len(t, res.Placements, 1)
	assert.Equal(t, math.Vec3{X: 5, Y: 5}, res.Placements[0].Transform.Location)
}

func TestIdentityRotationWithoutFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Offset = math.Vec2{X: 4, Y: 2}
	s := spline.New([]math.Vec3{{}, {X: 10}, {X: 10, Y: 10}}, spline.Curve, false)

	res := NewSeeded(1).Compute(s, footprintWithStep(2), cfg)
	require.NotEmpty(t, res.Placements)
	for _, p := range res.Placements {
		assert.True(t, p.Transform.Rotation.IsIdentity(), "placement %d rotation %v", p.Index, p.Transform.Rotation)
		assert.Equal(t, math.Vec3One, p.Transform.Scale)
	}
}

func TestLateralOffsetFollowsIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Offset = math.Vec2{X: 2, Y: 3}
	path := straightPath{200}

	res := NewSeeded(1).Compute(path, footprintWithStep(1), cfg)
	require.Len(t, res.Placements, 200)

	for _, i := range []int{0, 1, 5, 100} {
		p := res.Placements[i]
		base := path.PositionAtDistance(p.Distance, spline.Local)
		got := p.Transform.Location.Sub(base)

		assert.InDelta(t, stdmath.Cos(float64(i))*2, got.X, 1e-4, "offset X at %d", i)
		assert.InDelta(t, stdmath.Sin(float64(i))*3, got.Y, 1e-4, "offset Y at %d", i)
		assert.Equal(t, float32(0), got.Z)
	}
}

func TestLookAtChainsToPreviousPlacement(t *testing.T) {
	// L-shaped path of length 7: three placements at 0, 3 and 6.
	s := spline.New([]math.Vec3{{}, {X: 3}, {X: 3, Y: 4}}, spline.Linear, false)
	cfg := DefaultConfig()
	cfg.LookAt = true
	cfg.EvenSpread = true
	cfg.Offset = math.Vec2{X: 1}

	res := NewSeeded(1).Compute(s, footprintWithStep(3), cfg)
	require.Len(t, res.Placements, 3)

	// Instance 0 faces the path position one step ahead.
	p0 := res.Placements[0]
	want0 := s.PositionAtDistance(3, spline.Local).Sub(p0.Transform.Location).Normalize()
	assertDir(t, want0, p0.Transform.Forward())

	// Later instances face the previous placed location, offset included.
	for k := 1; k < len(res.Placements); k++ {
		cur := res.Placements[k].Transform
		prev := res.Placements[k-1].Transform
		want := prev.Location.Sub(cur.Location).Normalize()
		assertDir(t, want, cur.Forward())
	}

	// The raw path point would give a different direction for instance 2.
	raw := s.PositionAtDistance(3, spline.Local).Sub(res.Placements[2].Transform.Location).Normalize()
	assert.False(t, raw.ApproxEqual(res.Placements[2].Transform.Forward(), 1e-3))
}

func TestLookAtFirstTargetIsOneStepAhead(t *testing.T) {
	// The look-ahead target for instance 0 is dist + step, which equals
	// (i+1)*step because i is always 0 there.
	s := spline.New([]math.Vec3{{}, {X: 2}, {X: 2, Y: 10}}, spline.Linear, false)
	cfg := DefaultConfig()
	cfg.LookAt = true

	res := NewSeeded(1).Compute(s, footprintWithStep(4), cfg)
	require.NotEmpty(t, res.Placements)

	// Position at distance 4 is (2, 2, 0), so the first instance faces 45 degrees.
	assertDir(t, math.Vec3{X: 1, Y: 1}.Normalize(), res.Placements[0].Transform.Forward())
}

func TestRandomRotationIsYawOnlyAndSeeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomRotation = true
	cfg.LookAt = true // random rotation takes precedence
	path := straightPath{50}

	a := NewSeeded(42).Compute(path, footprintWithStep(1), cfg)
	b := NewSeeded(42).Compute(path, footprintWithStep(1), cfg)
	require.Equal(t, a, b)

	distinct := map[math.Quat]bool{}
	for _, p := range a.Placements {
		q := p.Transform.Rotation
		assert.Equal(t, float32(0), q.X)
		assert.Equal(t, float32(0), q.Y)
		assert.InDelta(t, 0, p.Transform.Forward().Z, 1e-6)
		distinct[q] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestRandomScaleRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomScale = true
	cfg.Scale = math.Vec3{X: 5, Y: 5, Z: 5}

	res := NewSeeded(7).Compute(straightPath{100}, footprintWithStep(1), cfg)
	require.NotEmpty(t, res.Placements)
	for _, p := range res.Placements {
		s := p.Transform.Scale
		assert.GreaterOrEqual(t, s.X, float32(0))
		assert.Less(t, s.X, float32(1))
		assert.GreaterOrEqual(t, s.Y, float32(0))
		assert.Less(t, s.Y, float32(1))
		assert.Equal(t, float32(1), s.Z)
	}
}

func TestNilRandUsesGlobalSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomScale = true

	res := NewPlacer(nil).Compute(straightPath{10}, footprintWithStep(1), cfg)
	assert.Len(t, res.Placements, 10)
}

func TestClosedLoopSkipsSeam(t *testing.T) {
	square := []math.Vec3{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}}
	cfg := DefaultConfig()
	cfg.EvenSpread = true
	cfg.ClosedLoop = true

	closed := spline.New(square, spline.Linear, true)
	res := NewSeeded(1).Compute(closed, footprintWithStep(10), cfg)
	assert.Equal(t, []float32{0, 10, 20, 30}, distances(res))

	cfg.ClosedLoop = false
	open := NewSeeded(1).Compute(closed, footprintWithStep(10), cfg)
	assert.Len(t, open.Placements, 5)

	count := NewSeeded(1).Compute(closed, footprintWithStep(10), DefaultConfig())
	assert.Equal(t, []float32{0, 10, 20, 30}, distances(count))
}

func TestDistancesNonDecreasing(t *testing.T) {
	s := spline.New([]math.Vec3{{}, {X: 10, Y: 10}, {X: 20}, {X: 30, Y: -10}}, spline.Curve, true)
	for _, even := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.EvenSpread = even
		cfg.ClosedLoop = true

		res := NewSeeded(1).Compute(s, footprintWithStep(1.5), cfg)
		require.NotEmpty(t, res.Placements)
		for i := 1; i < len(res.Placements); i++ {
			assert.GreaterOrEqual(t, res.Placements[i].Distance, res.Placements[i-1].Distance)
		}
		assert.LessOrEqual(t, res.LastDistance, res.Length)
	}
}

func TestLastDistance(t *testing.T) {
	count := NewSeeded(1).Compute(straightPath{10}, footprintWithStep(3), DefaultConfig())
	assert.Equal(t, float32(6), count.LastDistance)
	assert.Equal(t, float32(10), count.Length)
	assert.Equal(t, float32(3), count.Step)

	cfg := DefaultConfig()
	cfg.EvenSpread = true
	even := NewSeeded(1).Compute(straightPath{10}, footprintWithStep(3), cfg)
	assert.Equal(t, float32(9), even.LastDistance)
}

type countingSink struct {
	added   []math.Transform
	cleared int
}

func (s *countingSink) AddInstance(t math.Transform) int {
	s.added = append(s.added, t)
	return len(s.added) - 1
}

func (s *countingSink) ClearInstances() {
	s.added = nil
	s.cleared++
}

func (s *countingSink) InstanceCount() int { return len(s.added) }

func TestApplyKeepsOrder(t *testing.T) {
	res := NewSeeded(1).Compute(straightPath{10}, footprintWithStep(2), DefaultConfig())
	sink := &countingSink{}
	res.Apply(sink)

	require.Equal(t, len(res.Placements), sink.InstanceCount())
	for i, p := range res.Placements {
		assert.Equal(t, p.Transform, sink.added[i])
	}
}

func assertDir(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqual(got, 1e-4), "direction = %v, want %v", got, want)
}

func TestOverflowingPathLengthDegrades(t *testing.T) {
	// Segment lengths near the float32 maximum sum to +Inf.
	s := spline.New([]math.Vec3{{}, {X: 3e38}, {}, {X: 3e38}}, spline.Linear, false)
	require.True(t, stdmath.IsInf(float64(s.Length()), 1))

	for _, even := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.EvenSpread = even
		res := NewSeeded(1).Compute(s, footprintWithStep(1), cfg)

		assert.Equal(t, []float32{0}, distances(res), "even spread %v", even)
		assert.Equal(t, float32(0), res.Length)
	}
}

func TestPlacementCountIsCapped(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a full capped run")
	}
	for _, even := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.EvenSpread = even
		res := NewSeeded(1).Compute(straightPath{1e9}, footprintWithStep(1), cfg)
		assert.Len(t, res.Placements, MaxPlacements, "even spread %v", even)
	}
}
