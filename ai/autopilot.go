package ai

import (
	"snake3d/game/types"
)

// Autopilot is the cheat-mode driver. It looks exactly one step ahead:
// move toward the food on whichever axis is free, otherwise take any
// move that stays on the board.
type Autopilot struct {
	grid types.Grid
}

func NewAutopilot(grid types.Grid) *Autopilot {
	return &Autopilot{grid: grid}
}

// PickDirection chooses the next pending direction. occupied must hold the
// body without its tail cell. It reports false when no move qualifies, in
// which case the caller keeps its pending direction.
func (a *Autopilot) PickDirection(head, food types.Point, occupied map[types.Point]bool, current types.Direction) (types.Direction, bool) {
	for _, d := range candidates(head, food) {
		if d.IsOpposite(current) {
			continue
		}
		next := head.Step(d)
		if a.grid.Valid(next) && !occupied[next] {
			return d, true
		}
	}

	// Last resort: any in-bounds move, even into the body.
	for _, d := range types.Cardinals {
		if d.IsOpposite(current) {
			continue
		}
		if a.grid.Valid(head.Step(d)) {
			return d, true
		}
	}
	return current, false
}

// candidates orders the moves that shrink the distance to food, column axis
// first. With fewer than two of those the cardinal moves are appended.
func candidates(head, food types.Point) []types.Direction {
	out := make([]types.Direction, 0, len(types.Cardinals))
	switch sign(food.X - head.X) {
	case 1:
		out = append(out, types.Right)
	case -1:
		out = append(out, types.Left)
	}
	switch sign(food.Y - head.Y) {
	case 1:
		out = append(out, types.Down)
	case -1:
		out = append(out, types.Up)
	}
	if len(out) < 2 {
		for _, d := range types.Cardinals {
			if !contains(out, d) {
				out = append(out, d)
			}
		}
	}
	return out
}

func contains(dirs []types.Direction, d types.Direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
