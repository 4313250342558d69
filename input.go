package main

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

// Input adapts ebiten's keyboard and cursor to the camera systems. It is
// also the first system of the frame: it advances the frame clock and turns
// cursor movement into pointer motion events.
type Input struct {
	ticks int64

	cursorX, cursorY int
	hasCursor        bool
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Update(w *ecs.World) {
	if w == nil {
		return
	}
	in.ticks++

	x, y := ebiten.CursorPosition()
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		// A free cursor must not turn the camera; resync once recaptured.
		in.hasCursor = false
		return
	}
	if in.hasCursor && (x != in.cursorX || y != in.cursorY) {
		w.Events().Push(ecs.Event{
			Type: component.EventPointerMotion,
			Data: component.PointerMotion{Delta: mgl32.Vec2{float32(x - in.cursorX), float32(y - in.cursorY)}},
		})
	}
	in.cursorX, in.cursorY = x, y
	in.hasCursor = true
}

// Elapsed is the frame-quantized time since the game started.
func (in *Input) Elapsed() time.Duration {
	return time.Duration(in.ticks) * time.Second / time.Duration(ebiten.TPS())
}

func (in *Input) JustPressed(k component.Key) bool {
	return inpututil.IsKeyJustPressed(ebiten.Key(k))
}

func (in *Input) Pressed(k component.Key) bool {
	return ebiten.IsKeyPressed(ebiten.Key(k))
}

// resolveKey maps prefab key names ("W", "ArrowUp", "Space") to ebiten keys.
func resolveKey(name string) (component.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("key %q: %w", name, err)
	}
	return component.Key(k), nil
}
