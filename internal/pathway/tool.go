package pathway

import (
	"go.uber.org/zap"

	"github.com/Faultbox/pathway/internal/engine/debug"
	"github.com/Faultbox/pathway/internal/logger"
	"github.com/Faultbox/pathway/pkg/math"
	"github.com/Faultbox/pathway/pkg/placement"
	"github.com/Faultbox/pathway/pkg/spline"
)

// Debug arrow geometry: each arrow hangs above its anchor point.
const (
	arrowTop    float32 = 200
	arrowBottom float32 = 100
	arrowSize   float32 = 10
)

// Marker is a single mesh at one end of the path.
type Marker struct {
	Visible bool
	// Location is in the tool's local space.
	Location math.Vec3
}

// Build summarises one rebuild.
type Build struct {
	Placements []placement.Placement
	Start      Marker
	End        Marker
	// Arrows holds debug lines in world space; empty unless ShowDebug is set.
	Arrows []debug.Line
	Step   float32
	Length float32
	// MeshResolved is false when the footprint fell back to a unit box.
	MeshResolved bool
	MeshExtent   math.Vec3
}

// Tool owns a definition and the host capabilities it writes to.
// It is not safe for concurrent use; the host rebuilds on its edit thread.
type Tool struct {
	def    Definition
	bounds placement.BoundsSource
	sink   placement.InstanceSink
	placer *placement.Placer
	log    *zap.Logger
}

// New creates a tool. bounds may be nil, in which case every mesh falls back
// to a unit footprint.
func New(def Definition, bounds placement.BoundsSource, sink placement.InstanceSink, rng placement.Rand) *Tool {
	return &Tool{
		def:    def,
		bounds: bounds,
		sink:   sink,
		placer: placement.NewPlacer(rng),
		log:    logger.Named("pathway"),
	}
}

// Definition returns the current definition.
func (t *Tool) Definition() Definition {
	return t.def
}

// SetDefinition replaces the definition. Call Rebuild afterwards.
func (t *Tool) SetDefinition(def Definition) {
	t.def = def
}

// Rebuild recomputes every instance from scratch and writes them to the sink.
func (t *Tool) Rebuild() Build {
	if t.sink.InstanceCount() > 0 {
		t.sink.ClearInstances()
	}

	def := t.def
	cfg := def.Placement.Normalized()
	path := def.Spline()

	var extent math.Vec3
	resolved := false
	if t.bounds != nil && def.Mesh != "" {
		extent, resolved = t.bounds.Bounds(def.Mesh)
	}
	fp := placement.NewFootprint(extent, resolved, cfg)

	res := t.placer.Compute(path, fp, cfg)
	res.Apply(t.sink)

	b := Build{
		Placements:   res.Placements,
		Start:        Marker{Visible: def.StartMarker},
		End:          Marker{Visible: def.EndMarker, Location: path.PositionAtDistance(res.LastDistance, spline.Local)},
		Step:         res.Step,
		Length:       res.Length,
		MeshResolved: resolved,
		MeshExtent:   extent,
	}

	if def.ShowDebug {
		b.Arrows = debugArrows(def)
	}

	t.log.Debug("rebuilt",
		zap.String("name", def.Name),
		zap.Int("instances", len(res.Placements)),
		zap.Float32("length", res.Length),
		zap.Float32("step", res.Step),
		zap.Bool("mesh_resolved", resolved),
		zap.Bool("even_spread", cfg.EvenSpread),
	)

	return b
}

// debugArrows marks the tool origin and the last control point.
func debugArrows(def Definition) []debug.Line {
	above := func(p math.Vec3, h float32) math.Vec3 {
		return p.Add(math.Vec3{Z: h})
	}

	last := def.Origin
	if n := len(def.Points); n > 0 {
		last = def.Origin.Add(def.Points[n-1])
	}

	lines := debug.Arrow(above(def.Origin, arrowTop), above(def.Origin, arrowBottom), arrowSize, debug.Red)
	return append(lines, debug.Arrow(above(last, arrowTop), above(last, arrowBottom), arrowSize, debug.Red)...)
}
