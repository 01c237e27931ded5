package placement

import "github.com/Faultbox/pathway/pkg/math"

// Spacing limits and default, matching the editor's property range.
const (
	MinSpacing     float32 = 0.01
	MaxSpacing     float32 = 3.0
	DefaultSpacing float32 = 2.0
)

// Config controls how instances are laid out along a path.
type Config struct {
	// Scale is applied to every instance and to the footprint.
	Scale math.Vec3 `yaml:"scale"`
	// Offset is the lateral oscillation amplitude on X and Y.
	Offset math.Vec2 `yaml:"offset"`
	// Spacing multiplies the mesh bounds to get the step distance.
	Spacing float32 `yaml:"spacing"`

	RandomRotation bool `yaml:"random_rotation"`
	RandomScale    bool `yaml:"random_scale"`
	LookAt         bool `yaml:"look_at"`
	// EvenSpread walks distance directly instead of counting steps.
	EvenSpread bool `yaml:"even_spread"`
	ClosedLoop bool `yaml:"closed_loop"`
}

// DefaultConfig returns unit scale, no offset and the default spacing.
func DefaultConfig() Config {
	return Config{
		Scale:   math.Vec3One,
		Spacing: DefaultSpacing,
	}
}

// Normalized returns a copy with spacing clamped to its allowed range.
func (c Config) Normalized() Config {
	switch {
	case c.Spacing < MinSpacing:
		c.Spacing = MinSpacing
	case c.Spacing > MaxSpacing:
		c.Spacing = MaxSpacing
	}
	return c
}
