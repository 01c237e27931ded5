// Package input turns SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a viewer event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDrag
	EventMouseWheel
)

// Event is one processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	// DX and DY carry drag motion in pixels or wheel steps.
	DX, DY float32
	Button uint8
}

// Input collects events once per frame.
type Input struct {
	events    []Event
	leftDown  bool
	rightDown bool
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true when the window should close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if e.Keysym.Sym == sdl.K_ESCAPE {
					quit = true
				}
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Sym,
				})
			}

		case *sdl.MouseButtonEvent:
			pressed := e.State == sdl.PRESSED
			switch e.Button {
			case sdl.BUTTON_LEFT:
				i.leftDown = pressed
			case sdl.BUTTON_RIGHT:
				i.rightDown = pressed
			}

		case *sdl.MouseMotionEvent:
			if !i.leftDown && !i.rightDown {
				continue
			}
			var button uint8 = sdl.BUTTON_LEFT
			if i.rightDown {
				button = sdl.BUTTON_RIGHT
			}
			i.events = append(i.events, Event{
				Type:   EventMouseDrag,
				DX:     float32(e.XRel),
				DY:     float32(e.YRel),
				Button: button,
			})

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			i.events = append(i.events, Event{Type: EventMouseWheel, DY: dy})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyPressed reports whether key went down this frame.
func (i *Input) KeyPressed(key sdl.Keycode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
