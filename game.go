package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/voxelcam/ecs"
	"github.com/milk9111/voxelcam/ecs/component"
	"github.com/milk9111/voxelcam/ecs/entity"
	"github.com/milk9111/voxelcam/ecs/system"
	"github.com/milk9111/voxelcam/prefabs"
)

type GameOptions struct {
	// CamerasPath is an explicit camera file; empty uses the prefab.
	CamerasPath string
	// VoxelSize overrides the camera file when non-nil.
	VoxelSize *int
	Debug     bool
}

type Game struct {
	frames int

	world   *ecs.World
	input   *Input
	watcher *prefabs.Watcher
	mods    *prefabs.ModTracker
	opts    GameOptions
}

func NewGame(opts GameOptions) (*Game, error) {
	file, err := loadCameras(opts.CamerasPath)
	if err != nil {
		return nil, err
	}

	voxel := file.Voxel()
	if opts.VoxelSize != nil {
		voxel = *opts.VoxelSize
	}

	world := ecs.NewWorld()
	input := NewInput()
	world.AddSystem(input)
	if err := system.AddVoxelCamSystems(world, system.Options{
		Keys:            input,
		Clock:           input,
		VoxelSize:       voxel,
		ReportPositions: opts.Debug,
	}); err != nil {
		return nil, err
	}

	cameras, err := entity.SpawnCameras(world, file, resolveKey)
	if err != nil {
		return nil, err
	}
	log.Printf("game: spawned %d camera(s), voxel size %d", len(cameras), voxel)

	g := &Game{world: world, input: input, mods: prefabs.NewModTracker(), opts: opts}
	g.mods.Changed(camerasPath(opts.CamerasPath))
	if watcher, err := prefabs.NewWatcher(watchDir(opts.CamerasPath)); err != nil {
		log.Printf("game: camera hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ebiten.CursorMode() == ebiten.CursorModeCaptured {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}

	g.reloadCameras()
	g.world.Update()
	return nil
}

// reloadCameras applies camera file edits before the frame's systems run, so
// the orientation sync system sees replaced configs in the same frame.
func (g *Game) reloadCameras() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("game: camera watcher: %v", err)
			continue
		default:
		}

		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		path := camerasPath(g.opts.CamerasPath)
		if filepath.Base(name) != filepath.Base(path) || !g.mods.Changed(path) {
			continue
		}

		file, err := loadCameras(g.opts.CamerasPath)
		if err != nil {
			log.Printf("game: reload %s: %v", name, err)
			continue
		}
		if err := entity.ApplyCameraSpecs(g.world, file, resolveKey); err != nil {
			log.Printf("game: reload %s: %v", name, err)
			continue
		}
		log.Printf("game: reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "Frames: %d    FPS: %.2f    Esc: toggle mouse capture\n", g.frames, ebiten.ActualFPS())

	cameras := entity.CamerasByName(g.world)
	names := make([]string, 0, len(cameras))
	for name := range cameras {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		transform, ok := ecs.Get(g.world, cameras[name], component.TransformComponent.Kind())
		if !ok {
			continue
		}
		p, f := transform.Position, transform.Forward()
		fmt.Fprintf(&b, "%s @ [%g, %g, %g]  facing [%.2f, %.2f, %.2f]\n", name, p.X(), p.Y(), p.Z(), f.X(), f.Y(), f.Z())
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func loadCameras(path string) (*prefabs.CameraFile, error) {
	if path == "" {
		return prefabs.LoadCameraFile(prefabs.CamerasFile)
	}
	return prefabs.LoadCameraFilePath(path)
}

func camerasPath(path string) string {
	if path == "" {
		return filepath.Join(prefabs.Dir, prefabs.CamerasFile)
	}
	return path
}

func watchDir(path string) string {
	return filepath.Dir(camerasPath(path))
}
