package ui

import (
	"fmt"

	"snake3d/game"
	"snake3d/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	lineHeight = 25
	hudWidth   = 500
	hudTop     = 20
)

// Segment and food geometry, as fractions of a cell.
const (
	segmentWidth  = 0.8
	segmentHeight = 28.0 / 60.0
	segmentLift   = 15.0 / 60.0
	markerRadius  = 4.0 / 60.0
	markerLength  = 22.0 / 60.0
	foodRadius    = 16.0 / 60.0
	foodLift      = 18.0 / 60.0
	minShade      = 0.25
)

var (
	background = rl.NewColor(13, 15, 23, 255)
	tileLight  = rl.White
	tileLilac  = rl.NewColor(199, 168, 242, 255)
	headColor  = rl.NewColor(26, 217, 64, 255)
	bodyColor  = rl.NewColor(26, 115, 217, 255)
	markColor  = rl.NewColor(38, 242, 64, 255)
	foodColor  = rl.NewColor(255, 179, 26, 255)
	textColor  = rl.White
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	orbit        *Orbit
}

func NewRenderer(orbit *Orbit) *Renderer {
	r := &Renderer{orbit: orbit}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame from a snapshot. It never touches the game.
func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(background)

	rl.BeginMode3D(r.orbit.Camera(s.Grid.CellSize))
	r.drawGround(s.Grid)
	r.drawFood(s)
	r.drawSnake(s)
	rl.EndMode3D()

	if s.Status == game.Over {
		r.drawGameOver(s)
	} else {
		r.drawHUD(s)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawGround(grid types.Grid) {
	size := rl.NewVector2(grid.CellSize, grid.CellSize)
	for i := 0; i < grid.Size; i++ {
		for j := 0; j < grid.Size; j++ {
			x, z := grid.CellToWorld(types.Point{X: i, Y: j})
			color := tileLight
			if (i+j)&1 == 1 {
				color = tileLilac
			}
			rl.DrawPlane(rl.NewVector3(x, 0, z), size, color)
		}
	}
}

func (r *Renderer) drawFood(s game.Snapshot) {
	if !s.HasFood {
		return
	}
	cell := s.Grid.CellSize
	x, z := s.Grid.CellToWorld(s.Food)
	rl.DrawSphere(rl.NewVector3(x, foodLift*cell, z), foodRadius*cell, foodColor)
}

func (r *Renderer) drawSnake(s game.Snapshot) {
	cell := s.Grid.CellSize
	for idx, p := range s.Snake {
		x, z := s.Grid.CellToWorld(p)
		pos := rl.NewVector3(x, segmentLift*cell, z)
		rl.DrawCube(pos, segmentWidth*cell, segmentHeight*cell, segmentWidth*cell, segmentColor(idx, len(s.Snake)))

		if idx == 0 {
			// Direction indicator sticking out of the top of the head.
			delta := s.Direction.Delta()
			top := rl.NewVector3(x, (segmentLift+segmentHeight/2)*cell, z)
			tip := rl.NewVector3(
				x+float32(delta.X)*markerLength*cell,
				top.Y,
				z+float32(delta.Y)*markerLength*cell,
			)
			rl.DrawCylinderEx(top, tip, markerRadius*cell, markerRadius*cell/2, 16, markColor)
		}
	}
}

// segmentColor shades the body darker toward the tail.
func segmentColor(idx, length int) rl.Color {
	if idx == 0 {
		return headColor
	}
	span := float32(length - 1)
	if span < 1 {
		span = 1
	}
	t := 1 - float32(idx)/span
	if t < minShade {
		t = minShade
	}
	return rl.NewColor(
		uint8(float32(bodyColor.R)*t),
		uint8(float32(bodyColor.G)*t),
		uint8(float32(bodyColor.B)*t),
		255,
	)
}

func (r *Renderer) drawHUD(s game.Snapshot) {
	x := r.screenWidth - hudWidth
	y := int32(hudTop)

	rl.DrawText(fmt.Sprintf("Score: %d   Best: %d", s.Score, s.HighScore), x, y, fontSize, textColor)
	y += lineHeight
	rl.DrawText("W/A/S/D = Move   Arrows = Camera   P = Pause   R = Restart   C = Cheat", x, y, fontSize/2+4, textColor)
	if s.Cheat {
		y += lineHeight
		rl.DrawText("[Cheat Mode: ON]", x, y, fontSize, textColor)
	}
	if s.Status == game.Paused {
		r.drawCentered("=== PAUSED ===", r.screenHeight/2, textColor)
	}
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	mid := r.screenHeight / 2
	rl.DrawRectangle(r.screenWidth/2-180, mid-60, 360, 130, rl.Fade(rl.White, 0.8))
	r.drawCentered(" GAME OVER ", mid-50, rl.Black)
	r.drawCentered(fmt.Sprintf("Final Score: %d (%s)", s.Score, s.Cause), mid-20, rl.Black)
	r.drawCentered(fmt.Sprintf("Best this session: %d", s.HighScore), mid+10, rl.Black)
	r.drawCentered("Press 'R' to Restart", mid+40, rl.Black)
}

func (r *Renderer) drawCentered(text string, y int32, color rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-w)/2, y, fontSize, color)
}
