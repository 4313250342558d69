package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "log camera positions whenever they change")
	cameras := flag.String("cameras", "", "camera file (defaults to prefabs/cameras.yaml)")
	voxel := flag.Int("voxel", 1, "voxel step size; overrides the camera file when set")
	flag.Parse()

	opts := GameOptions{CamerasPath: *cameras, Debug: *debug}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "voxel" {
			opts.VoxelSize = voxel
		}
	})

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("voxelcam")
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
