package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

var ErrInvalidVoxelSize = errors.New("voxel size must be at least 1")

// VoxelSize is the grid unit every accepted move is scaled by.
type VoxelSize int

func NewVoxelSize(n int) (VoxelSize, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidVoxelSize, n)
	}
	return VoxelSize(n), nil
}

// KeyState answers per-frame keyboard queries.
type KeyState interface {
	// JustPressed reports a released-to-pressed transition this frame.
	JustPressed(k component.Key) bool
	// Pressed reports that k is currently held.
	Pressed(k component.Key) bool
}

// Clock is a monotonic, frame-quantized elapsed time source.
type Clock interface {
	Elapsed() time.Duration
}

// Integrate computes the movement of one camera for one frame. It returns the
// position delta, already scaled by voxel, and whether any direction fired.
// A fired frame with a zero delta (opposite keys) still counts as a move.
//
// Fresh presses are honored only when exactly one of MinMoveInterval and last
// is present, or both are and the interval has passed. With neither present a
// fresh press does nothing; the camera starts moving on the next frame
// through the hold pass instead.
func Integrate(keys KeyState, cfg *component.CameraConfig, last *component.LastMoved, now time.Duration, voxel VoxelSize) (mgl32.Vec3, bool) {
	var delta mgl32.Vec3
	moved := false

	canMove := false
	switch {
	case cfg.MinMoveInterval != nil && last != nil:
		canMove = now-last.At > *cfg.MinMoveInterval
	case cfg.MinMoveInterval != nil || last != nil:
		canMove = true
	}
	if canMove {
		for _, d := range component.Directions {
			if keys.JustPressed(cfg.Binding(d)) {
				delta = delta.Add(d.Vec3())
				moved = true
			}
		}
	}

	if last != nil {
		canMove = !moved && now-last.At > cfg.HoldDelay
	} else {
		canMove = !moved
	}
	if canMove {
		for _, d := range component.Directions {
			if keys.Pressed(cfg.Binding(d)) {
				delta = delta.Add(d.Vec3())
				moved = true
			}
		}
	}

	if !moved {
		return mgl32.Vec3{}, false
	}
	return delta.Mul(float32(voxel)), true
}

// MovementSystem steps cameras along the voxel grid from key input.
type MovementSystem struct {
	keys  KeyState
	clock Clock
	voxel VoxelSize
}

func NewMovementSystem(keys KeyState, clock Clock, voxelSize int) (*MovementSystem, error) {
	if keys == nil || clock == nil {
		return nil, errors.New("movement system: key state and clock are required")
	}
	voxel, err := NewVoxelSize(voxelSize)
	if err != nil {
		return nil, fmt.Errorf("movement system: %w", err)
	}
	return &MovementSystem{keys: keys, clock: clock, voxel: voxel}, nil
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := s.clock.Elapsed()
	ecs.ForEach2(w, component.CameraConfigComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cfg *component.CameraConfig, transform *component.Transform) {
		last, _ := ecs.Get(w, e, component.LastMovedComponent.Kind())
		delta, moved := Integrate(s.keys, cfg, last, now, s.voxel)
		if !moved {
			return
		}

		transform.Position = transform.Position.Add(delta)
		ecs.MarkChanged(w, e, component.TransformComponent.Kind())
		if err := ecs.Add(w, e, component.LastMovedComponent.Kind(), &component.LastMoved{At: now}); err != nil {
			panic("movement system: record last move: " + err.Error())
		}
	})
}
