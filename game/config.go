package game

import (
	"time"

	"snake3d/game/types"

	"github.com/pkg/errors"
)

// Config holds the board geometry and the speed curve.
type Config struct {
	GridSize      int
	CellSize      float32
	InitialLength int
	StepBase      time.Duration // interval at the initial length
	StepMin       time.Duration // floor of the speed curve
	StepDecay     time.Duration // interval lost per extra segment
	Seed          uint64
}

func DefaultConfig() Config {
	return Config{
		GridSize:      types.DefaultGridSize,
		CellSize:      types.DefaultCellSize,
		InitialLength: 3,
		StepBase:      280 * time.Millisecond,
		StepMin:       70 * time.Millisecond,
		StepDecay:     8 * time.Millisecond,
		Seed:          42,
	}
}

func (c Config) Validate() error {
	if c.GridSize < 4 || c.GridSize > 100 {
		return errors.Errorf("grid size %d out of range [4, 100]", c.GridSize)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %v", c.CellSize)
	}
	// The body trails left from the centre and must stay on the board.
	if maxLen := c.GridSize/2 + 1; c.InitialLength < 1 || c.InitialLength > maxLen {
		return errors.Errorf("initial length %d out of range [1, %d]", c.InitialLength, maxLen)
	}
	if c.StepMin <= 0 || c.StepDecay < 0 {
		return errors.Errorf("step durations must be positive (min %v, decay %v)", c.StepMin, c.StepDecay)
	}
	if c.StepBase < c.StepMin {
		return errors.Errorf("step base %v below step min %v", c.StepBase, c.StepMin)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.NewGrid(c.GridSize, c.CellSize)
}

// StepInterval is the time between ticks for a snake of the given length.
// It never increases with length and is floored at StepMin.
func (c Config) StepInterval(length int) time.Duration {
	if length < c.InitialLength {
		length = c.InitialLength
	}
	interval := c.StepBase - time.Duration(length-c.InitialLength)*c.StepDecay
	if interval < c.StepMin {
		return c.StepMin
	}
	return interval
}
