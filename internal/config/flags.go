package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = flag.Int64("seed", -1, "Seed random placement (negative = unseeded)")
	flagFormat     = flag.String("format", "", "Output format: table, yaml or json")
	flagMeshDir    = flag.String("mesh-dir", "", "Directory searched first for mesh files")
	flagWindowed   = flag.Bool("windowed", false, "Run the viewer in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the viewer in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Viewer width")
	flagHeight     = flag.Int("height", 0, "Viewer height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed >= 0 {
		cfg.Placement.Seed = uint64(*flagSeed)
		cfg.Placement.Deterministic = true
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagMeshDir != "" {
		cfg.Assets.MeshDirs = append([]string{*flagMeshDir}, cfg.Assets.MeshDirs...)
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
