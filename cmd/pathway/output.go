package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/pathway/internal/assets"
	"github.com/Faultbox/pathway/internal/config"
	"github.com/Faultbox/pathway/internal/pathway"
	"github.com/Faultbox/pathway/pkg/math"
	"github.com/Faultbox/pathway/pkg/placement"
)

// newRand returns a seeded generator, or nil for the process-wide one.
func newRand(cfg config.PlacementConfig) placement.Rand {
	if !cfg.Deterministic {
		return nil
	}
	return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
}

type instanceRecord struct {
	Index    int        `yaml:"index" json:"index"`
	Distance float32    `yaml:"distance" json:"distance"`
	Location math.Vec3  `yaml:"location" json:"location"`
	Rotation [4]float32 `yaml:"rotation,flow" json:"rotation"` // x, y, z, w
	Scale    math.Vec3  `yaml:"scale" json:"scale"`
}

type markerRecord struct {
	Visible  bool      `yaml:"visible" json:"visible"`
	Location math.Vec3 `yaml:"location" json:"location"`
}

type pathwayRecord struct {
	Name      string           `yaml:"name" json:"name"`
	Length    float32          `yaml:"length" json:"length"`
	Step      float32          `yaml:"step" json:"step"`
	Mesh      string           `yaml:"mesh,omitempty" json:"mesh,omitempty"`
	Start     markerRecord     `yaml:"start" json:"start"`
	End       markerRecord     `yaml:"end" json:"end"`
	Instances []instanceRecord `yaml:"instances" json:"instances"`
}

func newReport(defs []pathway.Definition, builds []pathway.Build) []pathwayRecord {
	out := make([]pathwayRecord, len(defs))
	for i, def := range defs {
		b := builds[i]
		rec := pathwayRecord{
			Name:      def.Name,
			Length:    b.Length,
			Step:      b.Step,
			Mesh:      def.Mesh,
			Start:     markerRecord{b.Start.Visible, b.Start.Location},
			End:       markerRecord{b.End.Visible, b.End.Location},
			Instances: make([]instanceRecord, len(b.Placements)),
		}
		for j, p := range b.Placements {
			q := p.Transform.Rotation
			rec.Instances[j] = instanceRecord{
				Index:    p.Index,
				Distance: p.Distance,
				Location: p.Transform.Location,
				Rotation: [4]float32{q.X, q.Y, q.Z, q.W},
				Scale:    p.Transform.Scale,
			}
		}
		out[i] = rec
	}
	return out
}

func writeReport(w io.Writer, format string, report []pathwayRecord) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "table", "":
		return writeTable(w, report)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, report []pathwayRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, rec := range report {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "# %s\tlength %.2f\tstep %.2f\tinstances %d\n", rec.Name, rec.Length, rec.Step, len(rec.Instances))
		fmt.Fprintln(tw, "INDEX\tDISTANCE\tX\tY\tZ\tQX\tQY\tQZ\tQW\tSX\tSY\tSZ")
		for _, in := range rec.Instances {
			fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t%.2f\t%.2f\t%.2f\n",
				in.Index, in.Distance,
				in.Location.X, in.Location.Y, in.Location.Z,
				in.Rotation[0], in.Rotation[1], in.Rotation[2], in.Rotation[3],
				in.Scale.X, in.Scale.Y, in.Scale.Z,
			)
		}
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, defs []pathway.Definition, builds []pathway.Build) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPOINTS\tCURVE\tCLOSED\tLENGTH\tSTEP\tINSTANCES\tMESH")
	for i, def := range defs {
		b := builds[i]
		mesh := def.Mesh
		if mesh == "" {
			mesh = "-"
		} else if !b.MeshResolved {
			mesh += " (unit)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%t\t%.2f\t%.2f\t%d\t%s\n",
			def.Name, len(def.Points), def.CurveType, def.Placement.ClosedLoop,
			b.Length, b.Step, len(b.Placements), mesh)
	}
	tw.Flush()
}

func writeBounds(w io.Writer, name string, b assets.Bounds) {
	e := b.Extent()
	c := b.Center()
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  min:    %8.2f %8.2f %8.2f\n", b.Min.X, b.Min.Y, b.Min.Z)
	fmt.Fprintf(w, "  max:    %8.2f %8.2f %8.2f\n", b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(w, "  center: %8.2f %8.2f %8.2f\n", c.X, c.Y, c.Z)
	fmt.Fprintf(w, "  extent: %8.2f %8.2f %8.2f\n", e.X, e.Y, e.Z)
}
