package component

import "github.com/go-gl/mathgl/mgl32"

// Key is an opaque input key identifier. The runtime decides what the values
// mean; the camera systems only compare them.
type Key int

// EventPointerMotion is the event type carrying a PointerMotion payload.
const EventPointerMotion = "pointer_motion"

// PointerMotion is a raw pointer delta since the previous motion event.
type PointerMotion struct {
	Delta mgl32.Vec2
}
