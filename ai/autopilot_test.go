package ai

import (
	"testing"

	"snake3d/game/types"
)

func TestPickDirectionDiagonalPrefersColumn(t *testing.T) {
	a := NewAutopilot(types.NewGrid(20, 1))
	head := types.Point{X: 10, Y: 10}
	food := types.Point{X: 12, Y: 12}

	dir, ok := a.PickDirection(head, food, map[types.Point]bool{}, types.Right)
	if !ok || dir != types.Right {
		t.Errorf("expected Right, got %v (ok=%v)", dir, ok)
	}
}

func TestPickDirectionDiagonalRightBlocked(t *testing.T) {
	a := NewAutopilot(types.NewGrid(20, 1))
	head := types.Point{X: 10, Y: 10}
	food := types.Point{X: 12, Y: 12}
	occupied := map[types.Point]bool{{X: 11, Y: 10}: true}

	dir, ok := a.PickDirection(head, food, occupied, types.Right)
	if !ok || dir != types.Down {
		t.Errorf("expected Down, got %v (ok=%v)", dir, ok)
	}
}

func TestPickDirectionFallbackIgnoresBody(t *testing.T) {
	a := NewAutopilot(types.NewGrid(20, 1))
	head := types.Point{X: 10, Y: 10}
	food := types.Point{X: 12, Y: 12}
	occupied := map[types.Point]bool{
		{X: 11, Y: 10}: true,
		{X: 10, Y: 11}: true,
	}

	// Both greedy candidates are blocked and, with two of them, no cardinal
	// padding happens, so the fallback walks right into the body.
	dir, ok := a.PickDirection(head, food, occupied, types.Right)
	if !ok || dir != types.Right {
		t.Errorf("expected fallback Right, got %v (ok=%v)", dir, ok)
	}
}

func TestPickDirectionFallbackSkipsWalls(t *testing.T) {
	a := NewAutopilot(types.NewGrid(20, 1))
	head := types.Point{X: 19, Y: 0}
	food := types.Point{X: 18, Y: 1}
	occupied := map[types.Point]bool{
		{X: 18, Y: 0}: true,
		{X: 19, Y: 1}: true,
	}

	// Left is blocked by the body and Down reverses. The fallback skips
	// Right (wall) and takes Left into the body.
	dir, ok := a.PickDirection(head, food, occupied, types.Up)
	if !ok || dir != types.Left {
		t.Errorf("expected Left, got %v (ok=%v)", dir, ok)
	}
}

func TestPickDirectionSkipsReversal(t *testing.T) {
	a := NewAutopilot(types.NewGrid(20, 1))
	head := types.Point{X: 10, Y: 10}
	food := types.Point{X: 5, Y: 10}

	dir, ok := a.PickDirection(head, food, map[types.Point]bool{}, types.Right)
	if !ok || dir != types.Right {
		t.Errorf("expected Right since Left reverses, got %v (ok=%v)", dir, ok)
	}
}

func TestPickDirectionAlignedFood(t *testing.T) {
	a := NewAutopilot(types.NewGrid(20, 1))
	head := types.Point{X: 10, Y: 10}
	food := types.Point{X: 10, Y: 3}

	dir, ok := a.PickDirection(head, food, map[types.Point]bool{}, types.Right)
	if !ok || dir != types.Up {
		t.Errorf("expected Up, got %v (ok=%v)", dir, ok)
	}

	// Up blocked: padding continues with Right.
	occupied := map[types.Point]bool{{X: 10, Y: 9}: true}
	dir, ok = a.PickDirection(head, food, occupied, types.Right)
	if !ok || dir != types.Right {
		t.Errorf("expected Right, got %v (ok=%v)", dir, ok)
	}
}

func TestPickDirectionNothingQualifies(t *testing.T) {
	a := NewAutopilot(types.NewGrid(1, 1))
	head := types.Point{X: 0, Y: 0}

	dir, ok := a.PickDirection(head, head, map[types.Point]bool{}, types.Down)
	if ok {
		t.Errorf("expected no move on a single-cell board, got %v", dir)
	}
	if dir != types.Down {
		t.Errorf("expected current direction back, got %v", dir)
	}
}

func TestCandidates(t *testing.T) {
	got := candidates(types.Point{X: 5, Y: 5}, types.Point{X: 5, Y: 5})
	want := []types.Direction{types.Right, types.Left, types.Down, types.Up}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}

	got = candidates(types.Point{X: 5, Y: 5}, types.Point{X: 1, Y: 9})
	if len(got) != 2 || got[0] != types.Left || got[1] != types.Down {
		t.Errorf("expected [Left Down], got %v", got)
	}
}
