package ui

import (
	"snake3d/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls is the command side of the game core.
type Controls interface {
	RequestDirection(dir types.Direction)
	TogglePause()
	ToggleCheat()
	Reset()
}

// W moves away from the default camera position, S toward it.
var directionKeys = map[int32]types.Direction{
	rl.KeyW: types.Up,
	rl.KeyS: types.Down,
	rl.KeyA: types.Left,
	rl.KeyD: types.Right,
}

// HandleKey applies a single key press and reports whether it was bound.
func HandleKey(c Controls, key int32) bool {
	if dir, ok := directionKeys[key]; ok {
		c.RequestDirection(dir)
		return true
	}
	switch key {
	case rl.KeyP:
		c.TogglePause()
	case rl.KeyR:
		c.Reset()
	case rl.KeyC:
		c.ToggleCheat()
	default:
		return false
	}
	return true
}

// Poll drains the key queue into the game and moves the camera for held
// arrow keys. dt is the frame time in seconds.
func Poll(c Controls, orbit *Orbit, dt float32) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		HandleKey(c, key)
	}

	if rl.IsKeyDown(rl.KeyLeft) {
		orbit.Rotate(-azimuthSpeed * dt)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		orbit.Rotate(azimuthSpeed * dt)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		orbit.Raise(heightSpeed * dt)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		orbit.Raise(-heightSpeed * dt)
	}
}
