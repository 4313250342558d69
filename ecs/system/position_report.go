package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

// PositionReportSystem logs the position of every camera that moved.
// Rotation-only transform changes are not reported.
type PositionReportSystem struct {
	lastRun  uint64
	reported map[ecs.Entity]mgl32.Vec3
	logf     func(format string, args ...any)
}

func NewPositionReportSystem() *PositionReportSystem {
	return &PositionReportSystem{
		reported: make(map[ecs.Entity]mgl32.Vec3),
		logf:     log.Printf,
	}
}

func (s *PositionReportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	since := s.lastRun
	s.lastRun = w.ChangeTick()

	for e := range s.reported {
		if !ecs.IsAlive(w, e) {
			delete(s.reported, e)
		}
	}

	ecs.ForEachChanged(w, component.TransformComponent.Kind(), since, func(e ecs.Entity, transform *component.Transform) {
		if !ecs.Has(w, e, component.CameraConfigComponent.Kind()) {
			return
		}
		p := transform.Position
		if last, ok := s.reported[e]; ok && last == p {
			return
		}
		s.reported[e] = p

		name := e.String()
		if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && n.Value != "" {
			name = n.Value
		}
		s.logf("camera %s @ [%g, %g, %g]", name, p.X(), p.Y(), p.Z())
	})
}
