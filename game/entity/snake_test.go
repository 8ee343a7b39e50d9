package entity

import (
	"testing"

	"snake3d/game/types"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, 3, types.Right)

	want := []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if len(s.Body) != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), len(s.Body))
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("cell %d: expected %+v, got %+v", i, want[i], s.Body[i])
		}
	}
	if s.Direction != types.Right || s.Pending != types.Right {
		t.Errorf("expected Right/Right, got %v/%v", s.Direction, s.Pending)
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Right)

	s.Move(s.NextHead())
	if s.GetHead() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("expected head (6, 5), got %+v", s.GetHead())
	}
	if s.Len() != 4 {
		t.Errorf("expected length 4 after move, got %d", s.Len())
	}

	s.RemoveTail()
	if s.GetTail() != (types.Point{X: 4, Y: 5}) {
		t.Errorf("expected tail (4, 5), got %+v", s.GetTail())
	}
	if s.Len() != 3 {
		t.Errorf("expected length 3, got %d", s.Len())
	}
}

func TestApplyPendingRejectsReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Right)

	s.SetDirection(types.Left)
	if s.ApplyPending() {
		t.Errorf("expected reversal to be dropped")
	}
	if s.Direction != types.Right {
		t.Errorf("expected direction Right, got %v", s.Direction)
	}

	s.SetDirection(types.Up)
	if !s.ApplyPending() {
		t.Errorf("expected perpendicular turn to be applied")
	}
	if s.Direction != types.Up {
		t.Errorf("expected direction Up, got %v", s.Direction)
	}
}

func TestOccupied(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 4, types.Right)

	all := s.Occupied(false)
	if len(all) != 4 || !all[types.Point{X: 2, Y: 5}] {
		t.Errorf("expected all four cells including tail, got %v", all)
	}

	noTail := s.Occupied(true)
	if len(noTail) != 3 || noTail[types.Point{X: 2, Y: 5}] {
		t.Errorf("expected tail to be skipped, got %v", noTail)
	}

	cells := s.Cells()
	cells[0] = types.Point{X: -1, Y: -1}
	if s.GetHead() == cells[0] {
		t.Errorf("Cells must return a copy")
	}
}
