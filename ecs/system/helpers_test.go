package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

const (
	keyW component.Key = iota + 1
	keyS
	keyD
	keyA
	keyQ
	keyE
	keyI
	keyK
	keyJ
	keyL
)

type fakeKeys struct {
	just map[component.Key]bool
	held map[component.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{just: map[component.Key]bool{}, held: map[component.Key]bool{}}
}

func (k *fakeKeys) JustPressed(key component.Key) bool { return k.just[key] }
func (k *fakeKeys) Pressed(key component.Key) bool     { return k.held[key] }

// press simulates the frame a key goes down.
func (k *fakeKeys) press(keys ...component.Key) {
	for _, key := range keys {
		k.just[key] = true
		k.held[key] = true
	}
}

// hold clears the just-pressed edge but keeps keys down.
func (k *fakeKeys) hold() {
	k.just = map[component.Key]bool{}
}

func (k *fakeKeys) releaseAll() {
	k.just = map[component.Key]bool{}
	k.held = map[component.Key]bool{}
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Elapsed() time.Duration { return c.now }

func wasdConfig() *component.CameraConfig {
	return &component.CameraConfig{
		MoveNorth: keyW,
		MoveSouth: keyS,
		MoveEast:  keyD,
		MoveWest:  keyA,
		MoveUp:    keyQ,
		MoveDown:  keyE,
		Face:      component.PointerLook{Sensitivity: 0.001},
		HoldDelay: 250 * time.Millisecond,
	}
}

func spawnCamera(w *ecs.World, cfg *component.CameraConfig) ecs.Entity {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraConfigComponent.Kind(), cfg); err != nil {
		panic(err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(mgl32.Vec3{})); err != nil {
		panic(err)
	}
	return e
}

func newCameraWorld(keys KeyState, clock Clock, voxel int) *ecs.World {
	w := ecs.NewWorld()
	if err := AddVoxelCamSystems(w, Options{Keys: keys, Clock: clock, VoxelSize: voxel}); err != nil {
		panic(err)
	}
	return w
}

func pointerLookState(w *ecs.World, e ecs.Entity) *component.PointerLookState {
	orientation, ok := ecs.Get(w, e, component.OrientationComponent.Kind())
	if !ok {
		return nil
	}
	state, _ := orientation.State.(*component.PointerLookState)
	return state
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y()) && approx(a.Z(), b.Z())
}
