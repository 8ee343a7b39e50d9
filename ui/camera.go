package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit camera settings, in cells.
const (
	startAzimuth = 40.0
	startHeight  = 16.0 / 3.0
	minHeight    = 2.0
	maxHeight    = 35.0 / 3.0
	orbitRadius  = 15.0
	targetHeight = 2.0 / 3.0
	fieldOfView  = 70.0

	azimuthSpeed = 120.0 // degrees per second
	heightSpeed  = 10.0  // cells per second
)

// Orbit circles the board centre at a fixed radius. Only the azimuth and
// the eye height can change.
type Orbit struct {
	Azimuth float32
	Height  float32
}

func NewOrbit() *Orbit {
	return &Orbit{Azimuth: startAzimuth, Height: startHeight}
}

func (o *Orbit) Rotate(degrees float32) {
	o.Azimuth = float32(math.Mod(float64(o.Azimuth+degrees), 360))
}

// Raise moves the eye up or down, clamped to the allowed band.
func (o *Orbit) Raise(dy float32) {
	o.Height += dy
	if o.Height < minHeight {
		o.Height = minHeight
	}
	if o.Height > maxHeight {
		o.Height = maxHeight
	}
}

// Eye returns the camera position for the given cell size.
func (o *Orbit) Eye(cellSize float32) rl.Vector3 {
	th := float64(o.Azimuth) * math.Pi / 180
	return rl.NewVector3(
		float32(math.Sin(th))*orbitRadius*cellSize,
		o.Height*cellSize,
		float32(math.Cos(th))*orbitRadius*cellSize,
	)
}

func (o *Orbit) Camera(cellSize float32) rl.Camera3D {
	return rl.Camera3D{
		Position:   o.Eye(cellSize),
		Target:     rl.NewVector3(0, targetHeight*cellSize, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       fieldOfView,
		Projection: rl.CameraPerspective,
	}
}
