package component

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnsupportedMode is returned for orientation modes that have no runtime
// state or resolution yet.
var ErrUnsupportedMode = errors.New("unsupported orientation mode")

// OrientationKind is the discriminant shared by orientation modes and the
// state they drive.
type OrientationKind uint8

const (
	KindCursorTarget OrientationKind = iota + 1
	KindLookAtEntity
	KindLookAtPosition
	KindPointerLook
	KindKeyboardLook
)

func (k OrientationKind) String() string {
	switch k {
	case KindCursorTarget:
		return "cursor_target"
	case KindLookAtEntity:
		return "look_at_entity"
	case KindLookAtPosition:
		return "look_at_position"
	case KindPointerLook:
		return "pointer_look"
	case KindKeyboardLook:
		return "keyboard_look"
	}
	return fmt.Sprintf("orientation_kind(%d)", uint8(k))
}

// OrientationMode is how a camera decides where to face. The set of modes is
// closed to this package.
type OrientationMode interface {
	Kind() OrientationKind
	orientationMode()
}

// CursorTarget faces whatever is under the cursor.
type CursorTarget struct{}

// LookAtEntity faces the entity with the given name.
type LookAtEntity struct {
	TargetName string
}

// LookAtPosition faces a fixed world point.
type LookAtPosition struct {
	Point mgl32.Vec3
}

// PointerLook turns the camera with relative pointer motion.
type PointerLook struct {
	InvertY     bool
	Sensitivity float32
}

// KeyboardLook turns the camera with four keys.
type KeyboardLook struct {
	PitchUp   Key
	PitchDown Key
	YawLeft   Key
	YawRight  Key
}

func (CursorTarget) Kind() OrientationKind   { return KindCursorTarget }
func (LookAtEntity) Kind() OrientationKind   { return KindLookAtEntity }
func (LookAtPosition) Kind() OrientationKind { return KindLookAtPosition }
func (PointerLook) Kind() OrientationKind    { return KindPointerLook }
func (KeyboardLook) Kind() OrientationKind   { return KindKeyboardLook }

func (CursorTarget) orientationMode()   {}
func (LookAtEntity) orientationMode()   {}
func (LookAtPosition) orientationMode() {}
func (PointerLook) orientationMode()    {}
func (KeyboardLook) orientationMode()   {}

// OrientationState is the mutable per-camera data behind a mode.
type OrientationState interface {
	Kind() OrientationKind
}

// PointerLookState accumulates pointer motion. Values are radians and are
// never clamped.
type PointerLookState struct {
	Pitch float32
	Yaw   float32
}

func (*PointerLookState) Kind() OrientationKind { return KindPointerLook }

// DefaultState returns a fresh state for mode.
func DefaultState(mode OrientationMode) (OrientationState, error) {
	switch mode.(type) {
	case PointerLook:
		return &PointerLookState{}, nil
	case nil:
		return nil, fmt.Errorf("%w: <nil>", ErrUnsupportedMode)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode.Kind())
}

// StateKind returns the kind of state mode needs.
func StateKind(mode OrientationMode) (OrientationKind, error) {
	state, err := DefaultState(mode)
	if err != nil {
		return 0, err
	}
	return state.Kind(), nil
}

// Orientation holds a camera's current orientation state. The state is
// replaced, not merged, when the configured mode changes kind.
type Orientation struct {
	State OrientationState
}

var OrientationComponent = NewComponent[Orientation]()
