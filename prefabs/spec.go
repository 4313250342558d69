package prefabs

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/voxelcam/ecs/component"
	"gopkg.in/yaml.v3"
)

// CamerasFile is the default camera prefab.
const CamerasFile = "cameras.yaml"

// KeyResolver maps a key name from a prefab to a runtime key identifier.
type KeyResolver func(name string) (component.Key, error)

type CameraFile struct {
	// VoxelSize is nil when the file leaves it out; Voxel applies the default.
	VoxelSize *int         `yaml:"voxel_size"`
	Cameras   []CameraSpec `yaml:"cameras"`
}

// Voxel returns the configured voxel size, defaulting to 1.
func (f *CameraFile) Voxel() int {
	if f == nil || f.VoxelSize == nil {
		return 1
	}
	return *f.VoxelSize
}

type CameraSpec struct {
	Name        string       `yaml:"name"`
	Position    [3]float32   `yaml:"position"`
	Keys        MoveKeysSpec `yaml:"keys"`
	Face        FaceSpec     `yaml:"face"`
	MinMoveTime string       `yaml:"min_move_time"`
	HoldDelay   string       `yaml:"hold_delay"`
}

type MoveKeysSpec struct {
	North string `yaml:"north"`
	South string `yaml:"south"`
	East  string `yaml:"east"`
	West  string `yaml:"west"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
}

// FaceSpec selects an orientation mode; only the fields of that mode are
// read.
type FaceSpec struct {
	Mode        string       `yaml:"mode"`
	InvertY     bool         `yaml:"invert_y"`
	Sensitivity float32      `yaml:"sensitivity"`
	Target      string       `yaml:"target"`
	Point       [3]float32   `yaml:"point"`
	Keys        LookKeysSpec `yaml:"keys"`
}

type LookKeysSpec struct {
	PitchUp   string `yaml:"pitch_up"`
	PitchDown string `yaml:"pitch_down"`
	YawLeft   string `yaml:"yaw_left"`
	YawRight  string `yaml:"yaw_right"`
}

const (
	FaceCursor   = "cursor"
	FaceEntity   = "entity"
	FacePosition = "position"
	FacePointer  = "pointer"
	FaceKeyboard = "keyboard"
)

// LoadCameraFile loads and validates a camera prefab by name.
func LoadCameraFile(name string) (*CameraFile, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	file, err := ParseCameraFile(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return file, nil
}

// LoadCameraFilePath loads and validates a camera file from an explicit path.
func LoadCameraFilePath(path string) (*CameraFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	file, err := ParseCameraFile(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return file, nil
}

// ParseCameraFile decodes a camera file and checks what can be checked
// without a key resolver.
func ParseCameraFile(data []byte) (*CameraFile, error) {
	var file CameraFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if file.Voxel() < 1 {
		return nil, fmt.Errorf("voxel_size must be at least 1, got %d", file.Voxel())
	}

	seen := make(map[string]struct{}, len(file.Cameras))
	for i, cam := range file.Cameras {
		if cam.Name == "" {
			return nil, fmt.Errorf("camera %d: missing name", i)
		}
		if _, dup := seen[cam.Name]; dup {
			return nil, fmt.Errorf("camera %q: duplicate name", cam.Name)
		}
		seen[cam.Name] = struct{}{}
	}
	return &file, nil
}

// Transform returns the spawn transform of the camera.
func (s CameraSpec) Transform() *component.Transform {
	return component.NewTransform(mgl32.Vec3(s.Position))
}

// Config converts the spec into a camera config, resolving key names with
// resolve.
func (s CameraSpec) Config(resolve KeyResolver) (*component.CameraConfig, error) {
	if resolve == nil {
		return nil, errors.New("prefabs: nil key resolver")
	}

	cfg := &component.CameraConfig{}
	bindings := []struct {
		field string
		name  string
		dst   *component.Key
	}{
		{"keys.north", s.Keys.North, &cfg.MoveNorth},
		{"keys.south", s.Keys.South, &cfg.MoveSouth},
		{"keys.east", s.Keys.East, &cfg.MoveEast},
		{"keys.west", s.Keys.West, &cfg.MoveWest},
		{"keys.up", s.Keys.Up, &cfg.MoveUp},
		{"keys.down", s.Keys.Down, &cfg.MoveDown},
	}
	for _, b := range bindings {
		key, err := resolveKey(resolve, b.field, b.name)
		if err != nil {
			return nil, fmt.Errorf("camera %q: %w", s.Name, err)
		}
		*b.dst = key
	}

	face, err := s.Face.OrientationMode(resolve)
	if err != nil {
		return nil, fmt.Errorf("camera %q: %w", s.Name, err)
	}
	cfg.Face = face

	if s.MinMoveTime != "" {
		d, err := parseDuration("min_move_time", s.MinMoveTime)
		if err != nil {
			return nil, fmt.Errorf("camera %q: %w", s.Name, err)
		}
		cfg.MinMoveInterval = component.Interval(d)
	}
	if s.HoldDelay != "" {
		d, err := parseDuration("hold_delay", s.HoldDelay)
		if err != nil {
			return nil, fmt.Errorf("camera %q: %w", s.Name, err)
		}
		cfg.HoldDelay = d
	}
	return cfg, nil
}

// OrientationMode builds the orientation mode the face spec selects.
func (f FaceSpec) OrientationMode(resolve KeyResolver) (component.OrientationMode, error) {
	switch f.Mode {
	case FaceCursor:
		return component.CursorTarget{}, nil
	case FaceEntity:
		if f.Target == "" {
			return nil, errors.New("face.target is required for mode entity")
		}
		return component.LookAtEntity{TargetName: f.Target}, nil
	case FacePosition:
		return component.LookAtPosition{Point: mgl32.Vec3(f.Point)}, nil
	case FacePointer:
		return component.PointerLook{InvertY: f.InvertY, Sensitivity: f.Sensitivity}, nil
	case FaceKeyboard:
		var mode component.KeyboardLook
		keys := []struct {
			field string
			name  string
			dst   *component.Key
		}{
			{"face.keys.pitch_up", f.Keys.PitchUp, &mode.PitchUp},
			{"face.keys.pitch_down", f.Keys.PitchDown, &mode.PitchDown},
			{"face.keys.yaw_left", f.Keys.YawLeft, &mode.YawLeft},
			{"face.keys.yaw_right", f.Keys.YawRight, &mode.YawRight},
		}
		for _, k := range keys {
			key, err := resolveKey(resolve, k.field, k.name)
			if err != nil {
				return nil, err
			}
			*k.dst = key
		}
		return mode, nil
	case "":
		return nil, errors.New("face.mode is required")
	}
	return nil, fmt.Errorf("face.mode: unknown mode %q", f.Mode)
}

func resolveKey(resolve KeyResolver, field, name string) (component.Key, error) {
	if name == "" {
		return 0, fmt.Errorf("%s: missing key", field)
	}
	key, err := resolve(name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return key, nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", field, value)
	}
	return d, nil
}
