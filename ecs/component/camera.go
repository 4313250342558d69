package component

import "time"

// CameraConfig is the user-authored setup of a voxel camera. It is replaced as
// a whole, never edited field by field, so a replacement is always observed
// as a change.
type CameraConfig struct {
	MoveNorth Key
	MoveSouth Key
	MoveEast  Key
	MoveWest  Key
	MoveUp    Key
	MoveDown  Key

	Face OrientationMode

	// MinMoveInterval, when set, is the time that must pass since the last
	// accepted move before a fresh key press is honored. Nil means unset.
	MinMoveInterval *time.Duration
	// HoldDelay is the time a held key waits after the last accepted move
	// before it repeats.
	HoldDelay time.Duration
}

// Binding returns the key bound to d.
func (c *CameraConfig) Binding(d Direction) Key {
	switch d {
	case North:
		return c.MoveNorth
	case South:
		return c.MoveSouth
	case East:
		return c.MoveEast
	case West:
		return c.MoveWest
	case Up:
		return c.MoveUp
	case Down:
		return c.MoveDown
	}
	return 0
}

// Interval is a convenience for filling MinMoveInterval.
func Interval(d time.Duration) *time.Duration {
	return &d
}

var CameraConfigComponent = NewComponent[CameraConfig]()

// LastMoved records when the camera last accepted a move. It is absent until
// the first move, and that absence matters to the movement rules.
type LastMoved struct {
	At time.Duration
}

var LastMovedComponent = NewComponent[LastMoved]()
