package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/pathway/internal/assets"
	"github.com/Faultbox/pathway/internal/config"
	"github.com/Faultbox/pathway/internal/engine/camera"
	"github.com/Faultbox/pathway/internal/engine/debug"
	"github.com/Faultbox/pathway/internal/engine/input"
	"github.com/Faultbox/pathway/internal/engine/instancing"
	"github.com/Faultbox/pathway/internal/engine/window"
	"github.com/Faultbox/pathway/internal/logger"
	"github.com/Faultbox/pathway/internal/pathfile"
	"github.com/Faultbox/pathway/internal/pathway"
	"github.com/Faultbox/pathway/pkg/math"
)

const (
	pathSamples  = 16
	markerHeight = 60
	gridHalfSize = 2000
	gridSpacing  = 100
)

var gridColor = debug.Color{0.3, 0.3, 0.35, 1}

// entry is one pathway with its GPU instance buffer.
type entry struct {
	tool   *pathway.Tool
	buffer *instancing.Buffer
	build  pathway.Build
}

// App is the viewer state.
type App struct {
	cfg  *config.Config
	path string

	win    *window.Window
	input  *input.Input
	camera *camera.OrbitCamera
	lines  *instancing.Lines
	lib    *assets.Library
	pcg    *rand.PCG
	rng    *rand.Rand
	seed   uint64

	entries []*entry
	log     *zap.Logger
}

// NewApp opens the window and loads the definition file.
func NewApp(cfg *config.Config, path string) (*App, error) {
	win, err := window.New(window.Config{
		Title:      "pathview - " + filepath.Base(path),
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("OpenGL init failed: %w", err)
	}

	a := &App{
		cfg:    cfg,
		path:   path,
		win:    win,
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		lib:    assets.NewLibrary(cfg.Assets.MeshDirs...),
		seed:   cfg.Placement.Seed,
		log:    logger.Named("pathview"),
	}
	if !cfg.Placement.Deterministic {
		a.seed = rand.Uint64()
	}
	a.pcg = rand.NewPCG(a.seed, a.seed)
	a.rng = rand.New(a.pcg)

	a.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	a.lines, err = instancing.NewLines()
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.load(); err != nil {
		a.Close()
		return nil, err
	}
	a.fitCamera()
	return a, nil
}

// load (re)reads the definition file and rebuilds every pathway.
func (a *App) load() error {
	defs, err := pathfile.Load(a.path)
	if err != nil {
		return err
	}

	a.releaseEntries()
	a.lib.Clear()

	for _, def := range defs {
		buf, err := instancing.NewBuffer()
		if err != nil {
			return err
		}
		a.entries = append(a.entries, &entry{
			tool:   pathway.New(def, a.lib, buf, a.rng),
			buffer: buf,
		})
	}

	a.rebuild()
	a.log.Info("loaded", zap.String("file", a.path), zap.Int("pathways", len(defs)))
	return nil
}

// rebuild reruns placement for every pathway and refreshes the line set.
func (a *App) rebuild() {
	var lines []debug.Line
	lines = append(lines, groundGrid()...)

	for _, e := range a.entries {
		e.build = e.tool.Rebuild()
		e.buffer.SetExtent(e.build.MeshExtent)

		def := e.tool.Definition()
		lines = append(lines, debug.Polyline(def.SamplePath(pathSamples), debug.White)...)
		lines = append(lines, markerLines(def.Origin, e.build)...)
		lines = append(lines, e.build.Arrows...)
	}

	a.lines.Set(lines)
}

// reroll draws new random rotations and scales.
func (a *App) reroll() {
	a.seed++
	a.pcg.Seed(a.seed, a.seed)
	a.rebuild()
	a.log.Info("re-rolled", zap.Uint64("seed", a.seed))
}

func (a *App) fitCamera() {
	var points []math.Vec3
	for _, e := range a.entries {
		points = append(points, e.tool.Definition().SamplePath(pathSamples)...)
	}
	a.camera.FitToPoints(points)
}

// Run processes events and draws until the window closes.
func (a *App) Run() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	w, h := a.win.DrawableSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	for !a.input.Update() {
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}
		a.draw()
		a.win.SwapBuffers()
	}
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		w, h := a.win.DrawableSize()
		gl.Viewport(0, 0, int32(w), int32(h))
	case input.EventMouseDrag:
		if ev.Button == sdl.BUTTON_RIGHT {
			a.camera.HandlePan(ev.DY, -ev.DX)
		} else {
			a.camera.HandleDrag(ev.DX, ev.DY)
		}
	case input.EventMouseWheel:
		a.camera.HandleZoom(ev.DY)
	case input.EventKeyDown:
		switch ev.Key {
		case sdl.K_r:
			a.reroll()
		case sdl.K_f:
			a.fitCamera()
		case sdl.K_F5:
			if err := a.load(); err != nil {
				a.log.Error("reload failed", zap.Error(err))
			}
		}
	}
}

func (a *App) draw() {
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	w, h := a.win.DrawableSize()
	aspect := float32(w) / float32(max(h, 1))
	far := max(a.camera.Distance*10, 10000)
	viewProj := math.Perspective(math32.Pi/4, aspect, 1, far).Mul(a.camera.ViewMatrix())

	a.lines.Draw(viewProj)
	for _, e := range a.entries {
		// Instances are placed in the pathway's local space.
		o := e.tool.Definition().Origin
		e.buffer.Draw(viewProj.Mul(math.Translate(o.X, o.Y, o.Z)))
	}
}

func (a *App) releaseEntries() {
	for _, e := range a.entries {
		e.buffer.Delete()
	}
	a.entries = a.entries[:0]
}

// Close frees GPU resources and the window.
func (a *App) Close() {
	a.releaseEntries()
	if a.lines != nil {
		a.lines.Delete()
	}
	a.win.Close()
}

// markerLines draws visible start and end markers as green posts.
func markerLines(origin math.Vec3, b pathway.Build) []debug.Line {
	var lines []debug.Line
	for _, m := range []pathway.Marker{b.Start, b.End} {
		if !m.Visible {
			continue
		}
		base := origin.Add(m.Location)
		lines = append(lines, debug.Line{Start: base, End: base.Add(math.Vec3{Z: markerHeight}), Color: debug.Green})
	}
	return lines
}

func groundGrid() []debug.Line {
	var lines []debug.Line
	for v := float32(-gridHalfSize); v <= gridHalfSize; v += gridSpacing {
		lines = append(lines,
			debug.Line{Start: math.Vec3{X: v, Y: -gridHalfSize}, End: math.Vec3{X: v, Y: gridHalfSize}, Color: gridColor},
			debug.Line{Start: math.Vec3{X: -gridHalfSize, Y: v}, End: math.Vec3{X: gridHalfSize, Y: v}, Color: gridColor},
		)
	}
	return lines
}
