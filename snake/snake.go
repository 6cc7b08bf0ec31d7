// Package snake implements the snake game state machine that feeds the
// leaderboard. It owns rules and state only; rendering and the tick timer
// belong to the front-end driving it.
package snake

import (
	"fmt"
	"math/rand"
)

const (
	// BoardWidth and BoardHeight match the original 20x15 board.
	BoardWidth  = 20
	BoardHeight = 15

	// FoodScore is awarded per food eaten.
	FoodScore = 10

	// pendingCap bounds the queued direction inputs: only the two most
	// recent are retained, applied one per tick.
	pendingCap = 2
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

type Point struct {
	X int
	Y int
}

// Phase is where the game flow currently is. The full loop is
// Idle -> NameEntry -> Playing -> GameOver -> Leaderboard -> Idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseNameEntry
	PhasePlaying
	PhaseGameOver
	PhaseLeaderboard
)

// Game holds one match. Not safe for concurrent use; each session drives
// its own game from a single goroutine.
type Game struct {
	width   int
	height  int
	snake   []Point // head first
	food    Point
	heading Direction
	pending []Direction
	score   int
	over    bool
	paused  bool
	phase   Phase
	rnd     *rand.Rand
}

// New creates an idle game on the standard board.
func New(rnd *rand.Rand) *Game {
	g := &Game{
		width:  BoardWidth,
		height: BoardHeight,
		rnd:    rnd,
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.snake = []Point{{X: g.width / 2, Y: g.height / 2}}
	g.food = Point{X: g.width/2 + 5, Y: g.height / 2}
	g.heading = Right
	g.pending = nil
	g.score = 0
	g.over = false
	g.paused = false
}

func (g *Game) Phase() Phase       { return g.phase }
func (g *Game) Score() int         { return g.score }
func (g *Game) Over() bool         { return g.over }
func (g *Game) Paused() bool       { return g.paused }
func (g *Game) Food() Point        { return g.food }
func (g *Game) Width() int         { return g.width }
func (g *Game) Height() int        { return g.height }
func (g *Game) Heading() Direction { return g.heading }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []Point {
	body := make([]Point, len(g.snake))
	copy(body, g.snake)
	return body
}

// BeginNameEntry moves Idle -> NameEntry (pre-game naming).
func (g *Game) BeginNameEntry() {
	g.phase = PhaseNameEntry
}

// Start resets the board and moves to Playing.
func (g *Game) Start() {
	g.reset()
	g.phase = PhasePlaying
}

// TogglePause flips the pause flag while playing.
func (g *Game) TogglePause() {
	if g.phase == PhasePlaying && !g.over {
		g.paused = !g.paused
	}
}

// Queue records a direction input. Inputs that reverse the effective
// heading (the heading after already-queued inputs are applied) are
// rejected to prevent instant self-collision. Only the two most recent
// inputs are retained.
func (g *Game) Queue(d Direction) {
	eff := g.heading
	if len(g.pending) > 0 {
		eff = g.pending[len(g.pending)-1]
	}
	if d == eff || d == eff.Opposite() {
		return
	}
	if len(g.pending) == pendingCap {
		g.pending = g.pending[1:]
	}
	g.pending = append(g.pending, d)
}

// Step advances the game one tick: applies at most one queued direction,
// moves the head, and resolves wall, self and food collisions. Wall or
// self collision ends the game without moving the snake or awarding
// partial credit.
func (g *Game) Step() {
	if g.phase != PhasePlaying || g.over || g.paused {
		return
	}

	if len(g.pending) > 0 {
		g.heading = g.pending[0]
		g.pending = g.pending[1:]
	}

	head := g.snake[0]
	next := head
	switch g.heading {
	case Up:
		next.Y--
	case Down:
		next.Y++
	case Left:
		next.X--
	case Right:
		next.X++
	}

	if next.X < 0 || next.X >= g.width || next.Y < 0 || next.Y >= g.height {
		g.endMatch()
		return
	}

	// Self-collision is checked against the pre-move body excluding the
	// tail cell being vacated this tick (the standard snake rule). Food
	// never spawns on the body, so a growing move can't land on the tail.
	for _, segment := range g.snake[:len(g.snake)-1] {
		if segment == next {
			g.endMatch()
			return
		}
	}

	grew := next == g.food
	g.snake = append([]Point{next}, g.snake...)
	if grew {
		g.score += FoodScore
		g.food = g.plantFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

func (g *Game) endMatch() {
	g.over = true
	g.phase = PhaseGameOver
}

// AdvanceFromGameOver continues the flow after a lost match: a score worth
// submitting asks for a name first, a zero score goes straight to the
// leaderboard.
func (g *Game) AdvanceFromGameOver() Phase {
	if g.phase != PhaseGameOver {
		return g.phase
	}
	if g.score > 0 {
		g.phase = PhaseNameEntry
	} else {
		g.phase = PhaseLeaderboard
	}
	return g.phase
}

// ShowLeaderboard moves to the leaderboard view.
func (g *Game) ShowLeaderboard() {
	g.phase = PhaseLeaderboard
}

// Finish returns the game to Idle.
func (g *Game) Finish() {
	g.reset()
	g.phase = PhaseIdle
}

func (g *Game) plantFood() Point {
	for {
		p := Point{X: g.rnd.Intn(g.width), Y: g.rnd.Intn(g.height)}
		occupied := false
		for _, segment := range g.snake {
			if segment == p {
				occupied = true
				break
			}
		}
		if !occupied {
			return p
		}
	}
}

// ValidateName enforces the 2-20 character bound on leaderboard names
// before a submission is attempted.
func ValidateName(name string) error {
	if len(name) < 2 || len(name) > 20 {
		return fmt.Errorf("name must be 2-20 characters")
	}
	return nil
}
