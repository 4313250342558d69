package component

import "github.com/go-gl/mathgl/mgl32"

// Direction is one of the six grid directions a camera can step in.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

// Directions lists every direction in evaluation order.
var Directions = [...]Direction{North, South, East, West, Up, Down}

var directionVectors = [...]mgl32.Vec3{
	North: {0, 0, -1},
	South: {0, 0, 1},
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
}

// Vec3 returns the unit axis vector for d.
func (d Direction) Vec3() mgl32.Vec3 {
	if int(d) >= len(directionVectors) {
		return mgl32.Vec3{}
	}
	return directionVectors[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}
