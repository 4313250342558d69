package system

import (
	"fmt"

	"github.com/milk9111/voxelcam/ecs"
)

// Options configures the voxel camera systems.
type Options struct {
	Keys      KeyState
	Clock     Clock
	VoxelSize int
	// ReportPositions adds a system that logs camera moves.
	ReportPositions bool
}

// AddVoxelCamSystems registers the camera systems on w in frame order:
// movement, pointer look, orientation sync, orientation resolve. An invalid
// voxel size is refused before anything is registered.
func AddVoxelCamSystems(w *ecs.World, opts Options) error {
	movement, err := NewMovementSystem(opts.Keys, opts.Clock, opts.VoxelSize)
	if err != nil {
		return fmt.Errorf("voxel cam: %w", err)
	}

	w.AddSystem(movement)
	w.AddSystem(NewPointerLookSystem())
	w.AddSystem(NewOrientationSyncSystem())
	w.AddSystem(NewOrientationResolveSystem())
	if opts.ReportPositions {
		w.AddSystem(NewPositionReportSystem())
	}
	return nil
}
