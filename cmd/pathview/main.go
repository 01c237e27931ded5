// pathview previews pathway definitions in an OpenGL window.
//
// Drag with the left button to orbit, right button to pan, wheel to zoom.
// R re-rolls random rotation and scale, F5 reloads the file, Esc quits.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/pathway/internal/config"
	"github.com/Faultbox/pathway/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pathview [flags] <file.yaml|file.hcl>")
		os.Exit(2)
	}

	app, err := NewApp(cfg, args[0])
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("viewer closed normally")
}
