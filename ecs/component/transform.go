package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is the camera's world placement. Movement writes Position,
// orientation resolution writes Rotation; neither touches the other.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// NewTransform returns a transform at pos with identity rotation.
func NewTransform(pos mgl32.Vec3) *Transform {
	return &Transform{Position: pos, Rotation: mgl32.QuatIdent()}
}

// Forward returns the direction the transform looks along (local -Z).
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

var TransformComponent = NewComponent[Transform]()
