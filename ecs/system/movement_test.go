package system

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
)

func TestIntegrateEdgeEligibility(t *testing.T) {
	cases := []struct {
		name     string
		interval *time.Duration
		last     *component.LastMoved
		now      time.Duration
		want     bool
	}{
		{"no_interval_no_last", nil, nil, time.Second, false},
		{"no_interval_with_last", nil, &component.LastMoved{At: 900 * time.Millisecond}, time.Second, true},
		{"interval_no_last", component.Interval(200 * time.Millisecond), nil, time.Second, true},
		{"interval_elapsed", component.Interval(200 * time.Millisecond), &component.LastMoved{At: 700 * time.Millisecond}, time.Second, true},
		{"interval_not_elapsed", component.Interval(200 * time.Millisecond), &component.LastMoved{At: 900 * time.Millisecond}, time.Second, false},
		{"interval_exactly_elapsed", component.Interval(200 * time.Millisecond), &component.LastMoved{At: 800 * time.Millisecond}, time.Second, false},
		{"zero_interval", component.Interval(0), &component.LastMoved{At: 900 * time.Millisecond}, time.Second, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := wasdConfig()
			cfg.MinMoveInterval = c.interval
			// Edge without hold isolates the fresh-press pass.
			keys := newFakeKeys()
			keys.just[keyW] = true

			delta, moved := Integrate(keys, cfg, c.last, c.now, 1)
			if moved != c.want {
				t.Fatalf("expected moved=%v, got %v", c.want, moved)
			}
			if c.want && !approxVec(delta, mgl32.Vec3{0, 0, -1}) {
				t.Fatalf("expected north step, got %v", delta)
			}
		})
	}
}

func TestIntegrateHoldEligibility(t *testing.T) {
	cases := []struct {
		name string
		last *component.LastMoved
		now  time.Duration
		want bool
	}{
		{"no_last", nil, time.Second, true},
		{"delay_elapsed", &component.LastMoved{At: 700 * time.Millisecond}, time.Second, true},
		{"delay_not_elapsed", &component.LastMoved{At: 800 * time.Millisecond}, time.Second, false},
		{"delay_exactly_elapsed", &component.LastMoved{At: 750 * time.Millisecond}, time.Second, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			keys := newFakeKeys()
			keys.held[keyD] = true

			delta, moved := Integrate(keys, wasdConfig(), c.last, c.now, 1)
			if moved != c.want {
				t.Fatalf("expected moved=%v, got %v", c.want, moved)
			}
			if c.want && !approxVec(delta, mgl32.Vec3{1, 0, 0}) {
				t.Fatalf("expected east step, got %v", delta)
			}
		})
	}
}

func TestIntegrateHoldSkippedAfterEdgeMove(t *testing.T) {
	cfg := wasdConfig()
	cfg.MinMoveInterval = component.Interval(100 * time.Millisecond)
	keys := newFakeKeys()
	keys.press(keyW)
	keys.held[keyQ] = true

	delta, moved := Integrate(keys, cfg, nil, time.Second, 1)
	if !moved {
		t.Fatalf("expected a move")
	}
	// Up is only held, and the hold pass must not run once the edge pass fired.
	if !approxVec(delta, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("expected only the north step, got %v", delta)
	}
}

func TestIntegrateAdditivity(t *testing.T) {
	cases := []struct {
		name  string
		keys  []component.Key
		voxel VoxelSize
		want  mgl32.Vec3
	}{
		{"north_east", []component.Key{keyW, keyD}, 1, mgl32.Vec3{1, 0, -1}},
		{"north_east_scaled", []component.Key{keyW, keyD}, 3, mgl32.Vec3{3, 0, -3}},
		{"up_west", []component.Key{keyQ, keyA}, 2, mgl32.Vec3{-2, 2, 0}},
		{"north_south_cancel", []component.Key{keyW, keyS}, 1, mgl32.Vec3{}},
		{"all_six_cancel", []component.Key{keyW, keyS, keyD, keyA, keyQ, keyE}, 4, mgl32.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := wasdConfig()
			cfg.MinMoveInterval = component.Interval(50 * time.Millisecond)
			keys := newFakeKeys()
			keys.press(c.keys...)

			delta, moved := Integrate(keys, cfg, nil, time.Second, c.voxel)
			if !moved {
				t.Fatalf("expected moved=true even for a net-zero delta")
			}
			if !approxVec(delta, c.want) {
				t.Fatalf("expected %v, got %v", c.want, delta)
			}
		})
	}
}

func TestIntegrateDuplicateBindingsFireTogether(t *testing.T) {
	cfg := wasdConfig()
	cfg.MoveUp = keyW
	keys := newFakeKeys()
	keys.held[keyW] = true

	delta, moved := Integrate(keys, cfg, nil, time.Second, 1)
	if !moved || !approxVec(delta, mgl32.Vec3{0, 1, -1}) {
		t.Fatalf("expected north and up together, got %v moved=%v", delta, moved)
	}
}

func TestIntegrateIsDeterministic(t *testing.T) {
	cfg := wasdConfig()
	cfg.MinMoveInterval = component.Interval(200 * time.Millisecond)
	last := &component.LastMoved{At: 500 * time.Millisecond}
	keys := newFakeKeys()
	keys.press(keyW, keyD)
	keys.held[keyE] = true

	d1, m1 := Integrate(keys, cfg, last, time.Second, 2)
	d2, m2 := Integrate(keys, cfg, last, time.Second, 2)
	if d1 != d2 || m1 != m2 {
		t.Fatalf("expected identical results, got (%v,%v) and (%v,%v)", d1, m1, d2, m2)
	}
	if last.At != 500*time.Millisecond {
		t.Fatalf("Integrate must not modify the timing record")
	}
}

func TestNewMovementSystemRejectsVoxelSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewMovementSystem(newFakeKeys(), &fakeClock{}, size); !errors.Is(err, ErrInvalidVoxelSize) {
			t.Fatalf("size %d: expected ErrInvalidVoxelSize, got %v", size, err)
		}
	}
	if err := AddVoxelCamSystems(ecs.NewWorld(), Options{Keys: newFakeKeys(), Clock: &fakeClock{}, VoxelSize: 0}); !errors.Is(err, ErrInvalidVoxelSize) {
		t.Fatalf("expected AddVoxelCamSystems to refuse voxel size 0, got %v", err)
	}
}

func TestMovementSystemFirstPress(t *testing.T) {
	keys := newFakeKeys()
	clock := &fakeClock{now: time.Second}
	w := newCameraWorld(keys, clock, 1)
	cam := spawnCamera(w, wasdConfig())

	// No interval and no history: the fresh press itself is ignored, the
	// hold pass moves the camera because nothing fired yet.
	keys.press(keyW)
	w.Update()

	transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !approxVec(transform.Position, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("expected one step north, got %v", transform.Position)
	}
	last, ok := ecs.Get(w, cam, component.LastMovedComponent.Kind())
	if !ok || last.At != time.Second {
		t.Fatalf("expected last move at 1s, got %v ok=%v", last, ok)
	}

	// Still held 100ms later: inside the hold delay.
	keys.hold()
	clock.now += 100 * time.Millisecond
	w.Update()
	if !approxVec(transform.Position, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("expected no repeat inside hold delay, got %v", transform.Position)
	}

	// 300ms after the last move the hold repeats.
	clock.now += 200 * time.Millisecond
	w.Update()
	if !approxVec(transform.Position, mgl32.Vec3{0, 0, -2}) {
		t.Fatalf("expected a repeat after hold delay, got %v", transform.Position)
	}
}

func TestMovementSystemEdgeOnlyPressNeedsHistory(t *testing.T) {
	keys := newFakeKeys()
	clock := &fakeClock{now: time.Second}
	w := newCameraWorld(keys, clock, 1)
	cam := spawnCamera(w, wasdConfig())

	// A key that went down and up within the frame is an edge without hold.
	keys.just[keyD] = true
	w.Update()
	if ecs.Has(w, cam, component.LastMovedComponent.Kind()) {
		t.Fatalf("expected no move on the first edge without interval or history")
	}

	// Once a move has been recorded, edges are free without an interval.
	if err := ecs.Add(w, cam, component.LastMovedComponent.Kind(), &component.LastMoved{At: clock.now}); err != nil {
		t.Fatal(err)
	}
	clock.now += 16 * time.Millisecond
	w.Update()
	transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !approxVec(transform.Position, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("expected one step east, got %v", transform.Position)
	}
}

func TestMovementSystemDebounce(t *testing.T) {
	cases := []struct {
		name  string
		gap   time.Duration
		moves float32
	}{
		{"presses_100ms_apart", 100 * time.Millisecond, 1},
		{"presses_250ms_apart", 250 * time.Millisecond, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			keys := newFakeKeys()
			clock := &fakeClock{now: time.Second}
			w := newCameraWorld(keys, clock, 1)
			cfg := wasdConfig()
			cfg.MinMoveInterval = component.Interval(200 * time.Millisecond)
			cfg.HoldDelay = time.Second
			cam := spawnCamera(w, cfg)

			keys.press(keyW)
			w.Update()

			keys.releaseAll()
			clock.now += c.gap / 2
			w.Update()

			keys.press(keyW)
			clock.now += c.gap - c.gap/2
			w.Update()

			transform, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
			if !approxVec(transform.Position, mgl32.Vec3{0, 0, -c.moves}) {
				t.Fatalf("expected %v moves north, got position %v", c.moves, transform.Position)
			}
		})
	}
}

func TestMovementSystemCamerasAreIndependent(t *testing.T) {
	keys := newFakeKeys()
	clock := &fakeClock{now: time.Second}
	w := newCameraWorld(keys, clock, 2)

	wasd := spawnCamera(w, wasdConfig())
	ijkl := wasdConfig()
	ijkl.MoveNorth, ijkl.MoveSouth, ijkl.MoveWest, ijkl.MoveEast = keyI, keyK, keyJ, keyL
	other := spawnCamera(w, ijkl)

	keys.press(keyL)
	w.Update()

	t1, _ := ecs.Get(w, wasd, component.TransformComponent.Kind())
	t2, _ := ecs.Get(w, other, component.TransformComponent.Kind())
	if t1.Position != (mgl32.Vec3{}) {
		t.Fatalf("expected wasd camera to stay put, got %v", t1.Position)
	}
	if !approxVec(t2.Position, mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("expected ijkl camera two units east, got %v", t2.Position)
	}
	if ecs.Has(w, wasd, component.LastMovedComponent.Kind()) {
		t.Fatalf("expected no timing record on the idle camera")
	}
}
