package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

var (
	worldUp    = mgl32.Vec3{0, 1, 0}
	localRight = mgl32.Vec3{1, 0, 0}
)

// OrientationResolveSystem writes the rotation of every camera whose
// orientation state changed since its previous run.
type OrientationResolveSystem struct {
	lastRun uint64
}

func NewOrientationResolveSystem() *OrientationResolveSystem {
	return &OrientationResolveSystem{}
}

func (s *OrientationResolveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	since := s.lastRun
	s.lastRun = w.ChangeTick()

	ecs.ForEachChanged(w, component.OrientationComponent.Kind(), since, func(e ecs.Entity, orientation *component.Orientation) {
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		rotation, err := ResolveRotation(orientation.State)
		if err != nil {
			panic("orientation resolve: entity " + e.String() + ": " + err.Error())
		}
		transform.Rotation = rotation
		ecs.MarkChanged(w, e, component.TransformComponent.Kind())
	})
}

// ResolveRotation turns an orientation state into a rotation. For pointer
// look that is yaw about world up followed by pitch about the local right
// axis, with pitch negated so positive pointer Y looks down.
func ResolveRotation(state component.OrientationState) (mgl32.Quat, error) {
	switch st := state.(type) {
	case *component.PointerLookState:
		yaw := mgl32.QuatRotate(st.Yaw, worldUp)
		pitch := mgl32.QuatRotate(-st.Pitch, localRight)
		return yaw.Mul(pitch), nil
	case nil:
		return mgl32.QuatIdent(), fmt.Errorf("%w: no state", component.ErrUnsupportedMode)
	}
	return mgl32.QuatIdent(), fmt.Errorf("%w: %s", component.ErrUnsupportedMode, state.Kind())
}
