// pathway lays instanced meshes along path definitions and prints the result.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/pathway/internal/assets"
	"github.com/Faultbox/pathway/internal/config"
	"github.com/Faultbox/pathway/internal/logger"
	"github.com/Faultbox/pathway/internal/pathfile"
	"github.com/Faultbox/pathway/internal/pathway"
	"github.com/Faultbox/pathway/internal/sink"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.JSON = cfg.Logging.JSON
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command, args := args[0], args[1:]
	switch command {
	case "place":
		err = cmdPlace(cfg, args)
	case "info":
		err = cmdInfo(cfg, args)
	case "bounds":
		err = cmdBounds(cfg, args)
	case "convert":
		err = cmdConvert(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func printUsage() {
	fmt.Println(`pathway - lay instanced meshes along spline paths

Usage:
  pathway [flags] <command> [args]

Commands:
  place <file>          Print every placement (table, yaml or json)
  info <file>           Show length, step and instance count per pathway
  bounds <mesh>...      Show mesh half-extents from the asset library
  convert <in> <out>    Rewrite a definition file as YAML or HCL

Flags:
  -config <path>        Config file (default pathway.yaml)
  -format <fmt>         Output format for place
  -seed <n>             Reproducible random rotation and scale
  -mesh-dir <dir>       Extra mesh directory, searched first
  -debug                Debug logging

Examples:
  pathway -seed 7 place fence.hcl
  pathway -format json place paths.yaml
  pathway -mesh-dir ./meshes bounds post lamp`)
}

// build runs every pathway in a definition file.
func build(cfg *config.Config, path string) ([]pathway.Definition, []pathway.Build, error) {
	defs, err := pathfile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	lib := assets.NewLibrary(cfg.Assets.MeshDirs...)
	rng := newRand(cfg.Placement)

	builds := make([]pathway.Build, len(defs))
	for i, def := range defs {
		tool := pathway.New(def, lib, sink.NewBatch(), rng)
		builds[i] = tool.Rebuild()
	}

	hits, misses := lib.Stats()
	logger.Debug("mesh cache", zap.Int("hits", hits), zap.Int("misses", misses))
	return defs, builds, nil
}

func cmdPlace(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	defs, builds, err := build(cfg, args[0])
	if err != nil {
		return err
	}
	return writeReport(os.Stdout, cfg.Output.Format, newReport(defs, builds))
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	defs, builds, err := build(cfg, args[0])
	if err != nil {
		return err
	}
	writeSummary(os.Stdout, defs, builds)
	return nil
}

func cmdBounds(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	lib := assets.NewLibrary(cfg.Assets.MeshDirs...)
	for _, name := range args {
		b, err := lib.Lookup(name)
		if err != nil {
			return err
		}
		writeBounds(os.Stdout, name, b)
	}
	return nil
}

func cmdConvert(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	defs, err := pathfile.Load(args[0])
	if err != nil {
		return err
	}
	if err := pathfile.Save(args[1], defs); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	logger.Info("converted", zap.String("from", args[0]), zap.String("to", args[1]), zap.Int("pathways", len(defs)))
	return nil
}
