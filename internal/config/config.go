// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Viewer    ViewerConfig    `yaml:"viewer"`
	Placement PlacementConfig `yaml:"placement"`
	Assets    AssetsConfig    `yaml:"assets"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ViewerConfig holds preview window settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// PlacementConfig controls the random source used for jitter.
type PlacementConfig struct {
	// Seed feeds the generator when Deterministic is set.
	Seed          uint64 `yaml:"seed"`
	Deterministic bool   `yaml:"deterministic"`
}

// AssetsConfig lists where mesh files are looked up.
type AssetsConfig struct {
	MeshDirs []string `yaml:"mesh_dirs"`
}

// OutputConfig selects how placements are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // table, yaml or json
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Placement: PlacementConfig{
			Seed: 1,
		},
		Assets: AssetsConfig{
			MeshDirs: []string{"meshes"},
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
