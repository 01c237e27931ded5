// Package placement computes instance transforms along a path.
//
// The placer is a pure function of a path, a footprint and a config. Path
// evaluation, mesh bounds and the instance collection are supplied by the
// host through the interfaces below so the placer runs without an engine.
package placement

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/pathway/pkg/math"
	"github.com/Faultbox/pathway/pkg/spline"
)

// Path is an arc-length parameterised curve.
type Path interface {
	Length() float32
	PositionAtDistance(dist float32, space spline.Space) math.Vec3
}

// BoundsSource looks up mesh half-extents by asset name.
type BoundsSource interface {
	Bounds(mesh string) (math.Vec3, bool)
}

// InstanceSink collects placed instances on the render side.
type InstanceSink interface {
	AddInstance(t math.Transform) int
	ClearInstances()
	InstanceCount() int
}

// Rand is the random source used for rotation and scale jitter.
// *rand.Rand satisfies it.
type Rand interface {
	Float32() float32
}

// Placement is one placed instance.
type Placement struct {
	Index     int
	Distance  float32
	Transform math.Transform
}

// Result is the output of one placement run.
type Result struct {
	Placements []Placement
	// Step is the distance between instances.
	Step float32
	// Length is the path length that was walked.
	Length float32
	// LastDistance is the distance of the final loop step. End markers are
	// anchored here rather than at Length.
	LastDistance float32
}

// Apply appends every placement to sink in path order.
func (r Result) Apply(sink InstanceSink) {
	for _, p := range r.Placements {
		sink.AddInstance(p.Transform)
	}
}

// Placer lays instances along a path.
type Placer struct {
	rng Rand
}

// NewPlacer creates a placer drawing jitter from rng. A nil rng uses the
// process-wide generator, which is not reproducible.
func NewPlacer(rng Rand) *Placer {
	if rng == nil {
		rng = globalRand{}
	}
	return &Placer{rng: rng}
}

// NewSeeded creates a placer with a deterministic generator.
func NewSeeded(seed uint64) *Placer {
	return NewPlacer(rand.New(rand.NewPCG(seed, seed)))
}

// Compute returns the placements for path.
func (pl *Placer) Compute(path Path, fp Footprint, cfg Config) Result {
	length := path.Length()
	if !(length > 0) || math32.IsInf(length, 1) {
		length = 0
	}
	step := fp.Step()

	res := Result{Step: step, Length: length}
	var prev math.Vec3

	emit := func(i int, dist float32) {
		loc := path.PositionAtDistance(dist, spline.Local).Add(lateralOffset(i, cfg.Offset))

		var rot math.Quat
		switch {
		case cfg.RandomRotation:
			rot = math.QuatFromYaw(pl.rng.Float32() * 360)
		case cfg.LookAt && i == 0:
			next := path.PositionAtDistance(dist+step, spline.Local)
			rot = math.QuatLookAt(loc, next)
		case cfg.LookAt:
			rot = math.QuatLookAt(loc, prev)
		default:
			rot = math.QuatIdentity()
		}

		scale := cfg.Scale
		if cfg.RandomScale {
			scale = math.Vec3{X: pl.rng.Float32(), Y: pl.rng.Float32(), Z: 1}
		}

		res.Placements = append(res.Placements, Placement{
			Index:    i,
			Distance: dist,
			Transform: math.Transform{
				Location: loc,
				Rotation: rot,
				Scale:    scale,
			},
		})
		res.LastDistance = dist
		prev = loc
	}

	if cfg.EvenSpread {
		// Distance-driven: keep stepping while the next distance stays on
		// the path. The first instance is always placed.
		for i := 0; i == 0 || i < MaxPlacements && spreadContinues(float32(i)*step, length, step, cfg.ClosedLoop); i++ {
			emit(i, float32(i)*step)
		}
		return res
	}

	n := stepCount(length, step)
	res.Placements = make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		emit(i, float32(i)*step)
	}
	return res
}

// MaxPlacements caps one run so a huge length against a tiny step cannot
// exhaust memory.
const MaxPlacements = 1 << 20

// tolerance absorbs float error when length is a multiple of step.
const tolerance = 1e-4

// stepCount is the number of whole steps that fit in length. A zero-length
// path still gets one instance.
func stepCount(length, step float32) int {
	if length == 0 {
		return 1
	}
	n := math32.Floor(length/step + tolerance)
	if !(n < MaxPlacements) {
		return MaxPlacements
	}
	return int(n)
}

// spreadContinues reports whether dist is still on the path. Open paths
// include the end point; on closed paths it coincides with the start and is
// skipped.
func spreadContinues(dist, length, step float32, closed bool) bool {
	slack := tolerance * step
	if closed {
		return dist < length-slack
	}
	return dist <= length+slack
}

// lateralOffset oscillates with the step index, not the distance.
func lateralOffset(i int, amp math.Vec2) math.Vec3 {
	if amp.IsZero() {
		return math.Vec3{}
	}
	s, c := math32.Sincos(float32(i))
	return math.Vec3{X: c * amp.X, Y: s * amp.Y}
}

type globalRand struct{}

func (globalRand) Float32() float32 { return rand.Float32() }
