package game

import (
	"log"
	"time"

	"snake3d/ai"
	"snake3d/game/entity"
	"snake3d/game/manager"
	"snake3d/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Status is the coarse lifecycle of a round.
type Status int

const (
	Running Status = iota
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Pilot picks a direction on behalf of the player while cheat mode is on.
type Pilot interface {
	PickDirection(head, food types.Point, occupied map[types.Point]bool, current types.Direction) (types.Direction, bool)
}

// Snapshot is the read-only view handed to the renderer each frame.
type Snapshot struct {
	Grid      types.Grid
	Snake     []types.Point // head first
	Direction types.Direction
	Food      types.Point
	HasFood   bool
	Score     int
	HighScore int
	Status    Status
	Cheat     bool
	Cause     manager.CollisionType
}

// Game owns every piece of mutable state of a session.
type Game struct {
	UUID   string
	Config Config
	Grid   types.Grid

	snake   *entity.Snake
	food    types.Point
	hasFood bool
	score   int
	status  Status
	cheat   bool
	cause   manager.CollisionType
	ticks   int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	pilot        Pilot
	ticker       Ticker
}

// NewGame validates cfg and returns a game ready to run.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		UUID:         uuid.New().String(),
		Config:       cfg,
		Grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rand.New(rand.NewSource(seed)), collisionMgr),
		stateMgr:     manager.NewStateManager(),
		pilot:        ai.NewAutopilot(grid),
	}
	g.Reset()
	return g, nil
}

// Reset starts a fresh round from any state.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.Grid.Center(), g.Config.InitialLength, types.Right)
	g.score = 0
	g.status = Running
	g.cheat = false
	g.cause = manager.NoCollision
	g.ticks = 0
	g.ticker.Restart()
	g.spawnFood()

	log.Printf("game %s: new round, length %d", g.UUID, g.snake.Len())
}

func (g *Game) spawnFood() {
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
}

// RequestDirection stores dir as the pending direction. Whether it is
// applied is decided on the next tick.
func (g *Game) RequestDirection(dir types.Direction) {
	g.snake.SetDirection(dir)
}

func (g *Game) TogglePause() {
	switch g.status {
	case Running:
		g.status = Paused
	case Paused:
		g.status = Running
	default:
		return
	}
	log.Printf("game %s: %s", g.UUID, g.status)
}

func (g *Game) ToggleCheat() {
	if g.status == Over {
		return
	}
	g.cheat = !g.cheat
	log.Printf("game %s: cheat mode %v", g.UUID, g.cheat)
}

// Tick advances the simulation by one cell. It does nothing unless the
// round is running.
func (g *Game) Tick() {
	if g.status != Running {
		return
	}

	g.snake.ApplyPending()
	newHead := g.snake.NextHead()

	// Tested against the full body: the tail cell still counts even though
	// it would be vacated later in this tick.
	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.finish(collision)
		return
	}

	g.ticks++
	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food, g.hasFood) {
		g.score++
		g.spawnFood()
	} else {
		g.snake.RemoveTail()
	}
}

func (g *Game) finish(cause manager.CollisionType) {
	g.status = Over
	g.cause = cause
	g.stateMgr.AddGame(manager.GameRecord{
		Score:  g.score,
		Length: g.snake.Len(),
		Ticks:  g.ticks,
		Cause:  cause,
	})
	log.Printf("game %s: over after %d ticks, score %d, length %d (%s)",
		g.UUID, g.ticks, g.score, g.snake.Len(), cause)
}

// Advance lets the autopilot steer when cheat mode is on, then ticks.
func (g *Game) Advance() {
	if g.status != Running {
		return
	}
	if g.cheat && g.hasFood {
		if dir, ok := g.pilot.PickDirection(g.snake.GetHead(), g.food, g.snake.Occupied(true), g.snake.Direction); ok {
			g.snake.SetDirection(dir)
		}
	}
	g.Tick()
}

// Update is the timing half of the frame loop. It advances the game when a
// step is due at now and returns the new snapshot; ok is false when no step
// ran.
func (g *Game) Update(now time.Time) (snap Snapshot, ok bool) {
	if g.status != Running {
		return Snapshot{}, false
	}
	if !g.ticker.Due(now, g.Config.StepInterval(g.snake.Len())) {
		return Snapshot{}, false
	}
	g.Advance()
	return g.Snapshot(), true
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:      g.Grid,
		Snake:     g.snake.Cells(),
		Direction: g.snake.Direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		HighScore: g.stateMgr.GetHighScore(),
		Status:    g.status,
		Cheat:     g.cheat,
		Cause:     g.cause,
	}
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}
