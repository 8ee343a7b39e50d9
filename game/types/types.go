package types

// Point is a grid cell: X is the column, Y is the row.
type Point struct {
	X, Y int
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Step returns the neighbouring cell in direction d.
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

// Direction is one of the four unit moves on the grid.
type Direction int

// The declaration order is the fixed cardinal scan order used by the autopilot.
const (
	Right Direction = iota
	Left
	Down
	Up
)

// Cardinals lists every direction in scan order: right, left, forward, back.
var Cardinals = [...]Direction{Right, Left, Down, Up}

// Delta converts a Direction into a movement vector. Down grows the row index.
func (d Direction) Delta() Point {
	switch d {
	case Right:
		return Point{X: 1, Y: 0}
	case Left:
		return Point{X: -1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Up:
		return Point{X: 0, Y: -1}
	default:
		return Point{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Down:
		return Up
	case Up:
		return Down
	default:
		return d
	}
}

// IsOpposite reports whether the two moves cancel each other out.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Delta().Add(other.Delta()) == Point{}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// Grid is the square board. CellSize is the edge of one cell in world units.
type Grid struct {
	Size     int
	CellSize float32
}

// Game constants
const (
	DefaultGridSize = 20
	DefaultCellSize = 1.0
)

func NewGrid(size int, cellSize float32) Grid {
	return Grid{Size: size, CellSize: cellSize}
}

func (g Grid) half() int {
	return g.Size / 2
}

// Valid reports whether p lies on the board.
func (g Grid) Valid(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Center is the cell the snake's head starts on.
func (g Grid) Center() Point {
	return Point{X: g.half(), Y: g.half()}
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// CellToWorld maps a cell to the world-space (x, z) position of its centre.
func (g Grid) CellToWorld(p Point) (x, z float32) {
	x = (float32(p.X-g.half()) + 0.5) * g.CellSize
	z = (float32(p.Y-g.half()) + 0.5) * g.CellSize
	return x, z
}

// CellOrigin maps a cell to the world-space (x, z) position of its minimum corner.
func (g Grid) CellOrigin(p Point) (x, z float32) {
	x = float32(p.X-g.half()) * g.CellSize
	z = float32(p.Y-g.half()) * g.CellSize
	return x, z
}
