package system

import (
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

// OrientationSyncSystem keeps each camera's orientation state in the shape
// its face mode needs. It only looks at cameras whose config was written
// since its previous run.
type OrientationSyncSystem struct {
	lastRun uint64
}

func NewOrientationSyncSystem() *OrientationSyncSystem {
	return &OrientationSyncSystem{}
}

func (s *OrientationSyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	since := s.lastRun
	s.lastRun = w.ChangeTick()

	ecs.ForEachChanged(w, component.CameraConfigComponent.Kind(), since, func(e ecs.Entity, cfg *component.CameraConfig) {
		if err := SyncOrientation(w, e, cfg); err != nil {
			panic("orientation sync: entity " + e.String() + ": " + err.Error())
		}
	})
}

// SyncOrientation creates or replaces the orientation state of e when its
// kind does not match cfg's face mode. A matching state is left untouched.
func SyncOrientation(w *ecs.World, e ecs.Entity, cfg *component.CameraConfig) error {
	want, err := component.StateKind(cfg.Face)
	if err != nil {
		return err
	}

	if orientation, ok := ecs.Get(w, e, component.OrientationComponent.Kind()); ok && orientation.State != nil {
		if orientation.State.Kind() == want {
			return nil
		}
	}

	state, err := component.DefaultState(cfg.Face)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.OrientationComponent.Kind(), &component.Orientation{State: state})
}
