package entity

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
	"github.com/milk9111/voxelcam/prefabs"
)

func letterKeys(name string) (component.Key, error) {
	if len(name) == 1 {
		return component.Key(name[0]), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

func cameraSpec(name string, face prefabs.FaceSpec) prefabs.CameraSpec {
	return prefabs.CameraSpec{
		Name:      name,
		Position:  [3]float32{1, 2, 3},
		Keys:      prefabs.MoveKeysSpec{North: "W", South: "S", East: "D", West: "A", Up: "Q", Down: "E"},
		Face:      face,
		HoldDelay: "250ms",
	}
}

var pointerFace = prefabs.FaceSpec{Mode: prefabs.FacePointer, Sensitivity: 0.001}

func TestNewCamera(t *testing.T) {
	w := ecs.NewWorld()
	cam, err := NewCamera(w, cameraSpec("main", pointerFace), letterKeys)
	if err != nil {
		t.Fatal(err)
	}

	transform, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !ok || transform.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("expected transform at (1,2,3), got %v ok=%v", transform, ok)
	}
	if transform.Rotation != mgl32.QuatIdent() {
		t.Fatalf("expected identity rotation, got %v", transform.Rotation)
	}
	cfg, ok := ecs.Get(w, cam, component.CameraConfigComponent.Kind())
	if !ok || cfg.MoveNorth != 'W' {
		t.Fatalf("expected camera config, got %+v ok=%v", cfg, ok)
	}
	if ecs.Has(w, cam, component.LastMovedComponent.Kind()) || ecs.Has(w, cam, component.OrientationComponent.Kind()) {
		t.Fatalf("expected timing and orientation state to start absent")
	}
}

func TestSpawnCamerasIsAllOrNothing(t *testing.T) {
	w := ecs.NewWorld()
	bad := cameraSpec("bad", pointerFace)
	bad.Keys.Up = "Space"
	file := &prefabs.CameraFile{Cameras: []prefabs.CameraSpec{cameraSpec("good", pointerFace), bad}}

	if _, err := SpawnCameras(w, file, letterKeys); err == nil {
		t.Fatalf("expected an error for the bad camera")
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("expected no entities after a failed spawn, got %d", len(ecs.Entities(w)))
	}
}

func TestApplyCameraSpecs(t *testing.T) {
	w := ecs.NewWorld()
	file := &prefabs.CameraFile{Cameras: []prefabs.CameraSpec{cameraSpec("main", pointerFace)}}
	cams, err := SpawnCameras(w, file, letterKeys)
	if err != nil {
		t.Fatal(err)
	}
	main := cams[0]
	transform, _ := ecs.Get(w, main, component.TransformComponent.Kind())
	transform.Position = mgl32.Vec3{9, 9, 9}

	before := w.ChangeTick()
	w.Update()

	reloaded := cameraSpec("main", prefabs.FaceSpec{Mode: prefabs.FaceCursor})
	reloaded.MinMoveTime = "100ms"
	extra := cameraSpec("second", pointerFace)
	if err := ApplyCameraSpecs(w, &prefabs.CameraFile{Cameras: []prefabs.CameraSpec{reloaded, extra}}, letterKeys); err != nil {
		t.Fatal(err)
	}

	cfg, _ := ecs.Get(w, main, component.CameraConfigComponent.Kind())
	if cfg.Face.Kind() != component.KindCursorTarget || cfg.MinMoveInterval == nil {
		t.Fatalf("expected replaced config, got %+v", cfg)
	}
	if !ecs.ChangedSince(w, main, component.CameraConfigComponent.Kind(), before) {
		t.Fatalf("expected replaced config to be marked changed")
	}
	if transform.Position != (mgl32.Vec3{9, 9, 9}) {
		t.Fatalf("expected position kept across reload, got %v", transform.Position)
	}
	if _, ok := CamerasByName(w)["second"]; !ok {
		t.Fatalf("expected new camera to be spawned")
	}
}

func TestApplyCameraSpecsRejectsBadFile(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewCamera(w, cameraSpec("main", pointerFace), letterKeys); err != nil {
		t.Fatal(err)
	}
	cam := CamerasByName(w)["main"]
	original, _ := ecs.Get(w, cam, component.CameraConfigComponent.Kind())

	broken := cameraSpec("main", prefabs.FaceSpec{Mode: "sideways"})
	if err := ApplyCameraSpecs(w, &prefabs.CameraFile{Cameras: []prefabs.CameraSpec{broken}}, letterKeys); err == nil {
		t.Fatalf("expected an error for an unknown face mode")
	}
	cfg, _ := ecs.Get(w, cam, component.CameraConfigComponent.Kind())
	if cfg != original {
		t.Fatalf("expected config untouched after a bad reload")
	}
}
