package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

// PointerLookSystem folds the frame's pointer motion into every pointer-look
// camera as one combined update.
type PointerLookSystem struct {
	logf func(format string, args ...any)
}

func NewPointerLookSystem() *PointerLookSystem {
	return &PointerLookSystem{logf: log.Printf}
}

func (s *PointerLookSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	delta, ok := SumPointerMotion(w.Events())
	if !ok {
		return
	}

	ecs.ForEach(w, component.OrientationComponent.Kind(), func(e ecs.Entity, orientation *component.Orientation) {
		state, ok := orientation.State.(*component.PointerLookState)
		if !ok {
			return
		}

		cfg, ok := ecs.Get(w, e, component.CameraConfigComponent.Kind())
		if !ok {
			return
		}
		mode, ok := cfg.Face.(component.PointerLook)
		if !ok {
			// Config switched away this frame; the synchronizer replaces
			// the state before the next frame.
			s.logf("pointer look: entity %v has pointer-look state but face mode is %v, skipping", e, faceKind(cfg.Face))
			return
		}

		ApplyPointerLook(state, mode, delta)
		ecs.MarkChanged(w, e, component.OrientationComponent.Kind())
	})
}

// SumPointerMotion adds up every pointer motion event in q. It reports false
// when there were none.
func SumPointerMotion(q *ecs.EventQueue) (mgl32.Vec2, bool) {
	var sum mgl32.Vec2
	seen := false
	q.Each(component.EventPointerMotion, func(evt ecs.Event) {
		switch motion := evt.Data.(type) {
		case component.PointerMotion:
			sum = sum.Add(motion.Delta)
			seen = true
		case *component.PointerMotion:
			if motion != nil {
				sum = sum.Add(motion.Delta)
				seen = true
			}
		}
	})
	return sum, seen
}

// ApplyPointerLook turns state by delta. Positive Y motion pitches up in
// state space unless InvertY is set.
func ApplyPointerLook(state *component.PointerLookState, mode component.PointerLook, delta mgl32.Vec2) {
	invert := float32(1)
	if mode.InvertY {
		invert = -1
	}
	state.Pitch += delta.Y() * mode.Sensitivity * invert
	state.Yaw += delta.X() * mode.Sensitivity
}

func faceKind(mode component.OrientationMode) string {
	if mode == nil {
		return "<nil>"
	}
	return mode.Kind().String()
}
