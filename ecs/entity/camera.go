package entity

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
	"github.com/milk9111/voxelcam/prefabs"
)

// NewCamera spawns a camera from spec. Orientation state is left to the
// orientation sync system, which creates it on the first frame.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, resolve prefabs.KeyResolver) (ecs.Entity, error) {
	cfg, err := spec.Config(resolve)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return spawnCamera(w, spec, cfg)
}

func spawnCamera(w *ecs.World, spec prefabs.CameraSpec, cfg *component.CameraConfig) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), spec.Transform()); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraConfigComponent.Kind(), cfg); err != nil {
		return 0, fmt.Errorf("camera: add camera config: %w", err)
	}
	return camera, nil
}

// SpawnCameras spawns every camera in file. Nothing is spawned when any
// camera fails to convert.
func SpawnCameras(w *ecs.World, file *prefabs.CameraFile, resolve prefabs.KeyResolver) ([]ecs.Entity, error) {
	configs, err := convertAll(file, resolve)
	if err != nil {
		return nil, err
	}

	cameras := make([]ecs.Entity, 0, len(configs))
	for i, spec := range file.Cameras {
		camera, err := spawnCamera(w, spec, configs[i])
		if err != nil {
			return cameras, err
		}
		cameras = append(cameras, camera)
	}
	return cameras, nil
}

// ApplyCameraSpecs replaces the config of every named camera with the one in
// file and spawns cameras the world does not have yet. Positions are kept.
// The file is converted up front, so a bad file leaves the world untouched.
func ApplyCameraSpecs(w *ecs.World, file *prefabs.CameraFile, resolve prefabs.KeyResolver) error {
	configs, err := convertAll(file, resolve)
	if err != nil {
		return err
	}

	byName := CamerasByName(w)
	for i, spec := range file.Cameras {
		camera, ok := byName[spec.Name]
		if !ok {
			if _, err := spawnCamera(w, spec, configs[i]); err != nil {
				return err
			}
			log.Printf("camera: spawned %q from reload", spec.Name)
			continue
		}
		if err := ecs.Add(w, camera, component.CameraConfigComponent.Kind(), configs[i]); err != nil {
			return fmt.Errorf("camera %q: replace config: %w", spec.Name, err)
		}
		delete(byName, spec.Name)
	}
	for name := range byName {
		log.Printf("camera: %q is no longer in the camera file, keeping its current config", name)
	}
	return nil
}

// CamerasByName indexes named cameras.
func CamerasByName(w *ecs.World) map[string]ecs.Entity {
	out := make(map[string]ecs.Entity)
	ecs.ForEach2(w, component.CameraConfigComponent.Kind(), component.NameComponent.Kind(), func(e ecs.Entity, _ *component.CameraConfig, name *component.Name) {
		out[name.Value] = e
	})
	return out
}

func convertAll(file *prefabs.CameraFile, resolve prefabs.KeyResolver) ([]*component.CameraConfig, error) {
	if file == nil {
		return nil, errors.New("camera: nil camera file")
	}
	configs := make([]*component.CameraConfig, 0, len(file.Cameras))
	for _, spec := range file.Cameras {
		cfg, err := spec.Config(resolve)
		if err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}
