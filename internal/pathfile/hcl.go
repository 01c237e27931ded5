package pathfile

import (
	"fmt"
	stdmath "math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/Faultbox/pathway/internal/pathway"
	"github.com/Faultbox/pathway/pkg/math"
	"github.com/Faultbox/pathway/pkg/placement"
)

// hclFile is the top level of a .hcl definition file:
//
//	pathway "fence" {
//	  points = [[0, 0, 0], [400, 0, 0]]
//	  mesh   = "post"
//	  placement {
//	    spacing = max(1.5, 0.5)
//	  }
//	}
type hclFile struct {
	Pathways []hclPathwayBlock `hcl:"pathway,block"`
}

type hclPathwayBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type hclPathway struct {
	Origin      []float64   `hcl:"origin,optional"`
	Points      [][]float64 `hcl:"points,optional"`
	CurveType   string      `hcl:"curve_type,optional"`
	Mesh        string      `hcl:"mesh,optional"`
	StartMarker bool        `hcl:"start_marker,optional"`
	EndMarker   bool        `hcl:"end_marker,optional"`
	ShowDebug   bool        `hcl:"show_debug,optional"`

	Placement []hclPlacementBlock `hcl:"placement,block"`
}

type hclPlacementBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type hclPlacement struct {
	Scale          []float64 `hcl:"scale,optional"`
	Offset         []float64 `hcl:"offset,optional"`
	Spacing        float64   `hcl:"spacing,optional"`
	RandomRotation bool      `hcl:"random_rotation,optional"`
	RandomScale    bool      `hcl:"random_scale,optional"`
	LookAt         bool      `hcl:"look_at,optional"`
	EvenSpread     bool      `hcl:"even_spread,optional"`
	ClosedLoop     bool      `hcl:"closed_loop,optional"`
}

// evalContext exposes a few numeric helpers to definition expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(stdmath.Pi),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"abs":   stdlib.AbsoluteFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
		},
	}
}

func decodeHCL(data []byte, filename string) ([]pathway.Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	ctx := evalContext()

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, ctx, &parsed); diags.HasErrors() {
		return nil, diags
	}

	defs := make([]pathway.Definition, 0, len(parsed.Pathways))
	for _, block := range parsed.Pathways {
		def, err := decodePathway(block, ctx)
		if err != nil {
			return nil, fmt.Errorf("pathway %q: %w", block.Name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func decodePathway(block hclPathwayBlock, ctx *hcl.EvalContext) (pathway.Definition, error) {
	def := pathway.NewDefinition()
	def.Name = block.Name

	// Absent optional attributes keep these values.
	raw := hclPathway{
		CurveType: def.CurveType,
	}
	if diags := gohcl.DecodeBody(block.Body, ctx, &raw); diags.HasErrors() {
		return def, diags
	}

	if raw.Origin != nil {
		origin, err := vec3(raw.Origin)
		if err != nil {
			return def, fmt.Errorf("origin: %w", err)
		}
		def.Origin = origin
	}

	if raw.Points != nil {
		def.Points = make([]math.Vec3, 0, len(raw.Points))
		for i, p := range raw.Points {
			v, err := vec3(p)
			if err != nil {
				return def, fmt.Errorf("point %d: %w", i, err)
			}
			def.Points = append(def.Points, v)
		}
	}

	def.CurveType = raw.CurveType
	def.Mesh = raw.Mesh
	def.StartMarker = raw.StartMarker
	def.EndMarker = raw.EndMarker
	def.ShowDebug = raw.ShowDebug

	switch len(raw.Placement) {
	case 0:
	case 1:
		cfg, err := decodePlacement(raw.Placement[0].Body, ctx, def.Placement)
		if err != nil {
			return def, fmt.Errorf("placement: %w", err)
		}
		def.Placement = cfg
	default:
		return def, fmt.Errorf("only one placement block allowed, got %d", len(raw.Placement))
	}

	return def, nil
}

func decodePlacement(body hcl.Body, ctx *hcl.EvalContext, cfg placement.Config) (placement.Config, error) {
	raw := hclPlacement{Spacing: float64(cfg.Spacing)}
	if diags := gohcl.DecodeBody(body, ctx, &raw); diags.HasErrors() {
		return cfg, diags
	}

	if raw.Scale != nil {
		s, err := vec3(raw.Scale)
		if err != nil {
			return cfg, fmt.Errorf("scale: %w", err)
		}
		cfg.Scale = s
	}
	if raw.Offset != nil {
		if len(raw.Offset) != 2 {
			return cfg, fmt.Errorf("offset: expected 2 components, got %d", len(raw.Offset))
		}
		cfg.Offset = math.Vec2{X: float32(raw.Offset[0]), Y: float32(raw.Offset[1])}
	}

	cfg.Spacing = float32(raw.Spacing)
	cfg.RandomRotation = raw.RandomRotation
	cfg.RandomScale = raw.RandomScale
	cfg.LookAt = raw.LookAt
	cfg.EvenSpread = raw.EvenSpread
	cfg.ClosedLoop = raw.ClosedLoop
	return cfg, nil
}

func vec3(c []float64) (math.Vec3, error) {
	if len(c) != 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(c))
	}
	return math.Vec3{X: float32(c[0]), Y: float32(c[1]), Z: float32(c[2])}, nil
}

func encodeHCL(defs []pathway.Definition) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, def := range defs {
		if i > 0 {
			root.AppendNewline()
		}
		body := root.AppendNewBlock("pathway", []string{def.Name}).Body()

		body.SetAttributeValue("origin", vec3Value(def.Origin))
		points := make([]cty.Value, len(def.Points))
		for j, p := range def.Points {
			points[j] = vec3Value(p)
		}
		body.SetAttributeValue("points", tupleOrEmpty(points))
		body.SetAttributeValue("curve_type", cty.StringVal(def.CurveType))
		if def.Mesh != "" {
			body.SetAttributeValue("mesh", cty.StringVal(def.Mesh))
		}
		body.SetAttributeValue("start_marker", cty.BoolVal(def.StartMarker))
		body.SetAttributeValue("end_marker", cty.BoolVal(def.EndMarker))
		body.SetAttributeValue("show_debug", cty.BoolVal(def.ShowDebug))

		cfg := def.Placement
		pb := body.AppendNewBlock("placement", nil).Body()
		pb.SetAttributeValue("scale", vec3Value(cfg.Scale))
		pb.SetAttributeValue("offset", cty.TupleVal([]cty.Value{number(cfg.Offset.X), number(cfg.Offset.Y)}))
		pb.SetAttributeValue("spacing", number(cfg.Spacing))
		pb.SetAttributeValue("random_rotation", cty.BoolVal(cfg.RandomRotation))
		pb.SetAttributeValue("random_scale", cty.BoolVal(cfg.RandomScale))
		pb.SetAttributeValue("look_at", cty.BoolVal(cfg.LookAt))
		pb.SetAttributeValue("even_spread", cty.BoolVal(cfg.EvenSpread))
		pb.SetAttributeValue("closed_loop", cty.BoolVal(cfg.ClosedLoop))
	}

	return f.Bytes()
}

func vec3Value(v math.Vec3) cty.Value {
	return cty.TupleVal([]cty.Value{number(v.X), number(v.Y), number(v.Z)})
}

// number widens through the shortest decimal so 0.1 is written as 0.1.
func number(f float32) cty.Value {
	v, err := cty.ParseNumberVal(fmt.Sprint(f))
	if err != nil {
		return cty.NumberFloatVal(float64(f))
	}
	return v
}

func tupleOrEmpty(vals []cty.Value) cty.Value {
	if len(vals) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(vals)
}
