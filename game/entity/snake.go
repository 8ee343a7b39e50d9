package entity

import (
	"snake3d/game/types"
)

// Snake keeps its body head first: Body[0] is the head, the last element is the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction // applied on the last tick
	Pending   types.Direction // latest request, applied on the next tick
}

// NewSnake lays out a straight snake of the given length whose body trails
// behind the head, opposite to the direction of travel.
func NewSnake(head types.Point, length int, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, 0, length)
	back := dir.Opposite()
	cell := head
	for i := 0; i < length; i++ {
		body = append(body, cell)
		cell = cell.Step(back)
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		Pending:   dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move pushes a new head onto the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// SetDirection records a request; the reversal guard runs in ApplyPending.
func (s *Snake) SetDirection(dir types.Direction) {
	s.Pending = dir
}

// ApplyPending adopts the pending direction unless it would reverse the
// snake. Dropped requests are not queued.
func (s *Snake) ApplyPending() bool {
	if s.Pending.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = s.Pending
	return true
}

// NextHead is the cell the head would enter moving in the current direction.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Step(s.Direction)
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Occupied returns the body cells as a set. With skipTail the tail cell is
// left out, since it moves away on a tick that eats nothing.
func (s *Snake) Occupied(skipTail bool) map[types.Point]bool {
	body := s.Body
	if skipTail && len(body) > 0 {
		body = body[:len(body)-1]
	}
	occupied := make(map[types.Point]bool, len(body))
	for _, p := range body {
		occupied[p] = true
	}
	return occupied
}

// Cells returns a copy of the body safe to hand to readers.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	copy(cells, s.Body)
	return cells
}
