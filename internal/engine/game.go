package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Options tunes a new game. Zero values fall back to defaults.
type Options struct {
	// GravityInterval is the real-time duration in seconds between
	// automatic downward shifts.
	GravityInterval float64

	// PiecePoints is awarded each time a piece locks.
	PiecePoints int

	// LinePoints maps rows-cleared-at-once (1..4) to awarded points.
	// The curve escalates so a quadruple clear beats four singles.
	LinePoints [4]int

	// Seed drives the piece bag. Zero means seed from the clock.
	Seed int64
}

// DefaultOptions returns the standard rule set.
func DefaultOptions() Options {
	return Options{
		GravityInterval: 0.5,
		PiecePoints:     1,
		LinePoints:      [4]int{100, 300, 500, 800},
		Seed:            0,
	}
}

// Game is the authoritative falling-block state machine. All mutation
// happens inside Advance, which runs to completion on the caller's
// goroutine; the accessor methods are read-only and safe to call between
// ticks.
type Game struct {
	board *Board
	bag   *Bag
	piece *Piece // nil only after game over
	queue commandQueue

	score   int
	lines   int
	over    bool
	elapsed float64 // time accumulated toward the next gravity step

	gravityInterval float64
	piecePoints     int
	linePoints      [4]int
}

// New creates a fresh game with an empty rows x cols board, score 0 and
// the first piece spawned. Non-positive dimensions are a configuration
// error.
func New(rows, cols int, opts Options) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	if opts.GravityInterval <= 0 {
		opts.GravityInterval = DefaultOptions().GravityInterval
	}
	if opts.LinePoints == ([4]int{}) {
		opts.LinePoints = DefaultOptions().LinePoints
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// The spawn footprint must fit the board width, otherwise the first
	// piece could never be placed.
	if cols < 4 {
		return nil, fmt.Errorf("engine: board too narrow (%d cols, need 4)", cols)
	}

	g := &Game{
		board:           board,
		bag:             NewBag(rand.New(rand.NewSource(seed))),
		gravityInterval: opts.GravityInterval,
		piecePoints:     opts.PiecePoints,
		linePoints:      opts.LinePoints,
	}
	g.spawn()
	return g, nil
}

// Push queues a player command for the next tick. Non-blocking; commands
// pushed after game over are discarded on the next Advance.
func (g *Game) Push(c Command) {
	g.queue.push(c)
}

// Advance moves the simulation forward by dt seconds of real time. It
// drains queued commands in FIFO order, then applies gravity once the
// accumulated time exceeds the gravity interval. A piece that can no
// longer fall locks into the board, full rows clear, score updates and
// the next piece spawns — all within the same call. After game over,
// Advance discards input and returns without touching any state.
func (g *Game) Advance(dt float64) {
	if g.over {
		g.queue.drain()
		return
	}
	if dt > 0 {
		g.elapsed += dt
	}

	for _, cmd := range g.queue.drain() {
		if g.over {
			break
		}
		switch cmd {
		case CmdMoveLeft:
			g.piece.TryMove(g.board, -1, 0)
		case CmdMoveRight:
			g.piece.TryMove(g.board, 1, 0)
		case CmdRotate:
			g.piece.TryRotate(g.board)
		case CmdSoftDrop:
			g.piece.TryMove(g.board, 0, 1)
		case CmdHardDrop:
			g.piece.Y = g.piece.ShadowY(g.board)
			g.lock()
		}
	}
	if g.over {
		return
	}

	if g.elapsed > g.gravityInterval {
		g.elapsed = 0
		if !g.piece.TryMove(g.board, 0, 1) {
			g.lock()
		}
	}
}

// lock writes the active piece into the board, clears full rows, scores
// the clear and spawns the next piece.
func (g *Game) lock() {
	g.board.Lock(g.piece.cells())
	g.piece = nil

	g.score += g.piecePoints
	if cleared := g.board.ClearFullRows(); cleared > 0 {
		g.lines += cleared
		if cleared > len(g.linePoints) {
			cleared = len(g.linePoints)
		}
		g.score += g.linePoints[cleared-1]
	}

	g.elapsed = 0
	g.spawn()
}

// spawn places the next bag piece at the fixed spawn position: rotation
// zero, centered horizontally, origin at the top row. A spawn that
// immediately collides means the stack reached the top; the game ends.
func (g *Game) spawn() {
	kind := g.bag.Next()
	x := (g.board.Cols() - kind.Footprint(0).Size()) / 2
	if WouldCollide(g.board, kind, 0, x, 0) {
		g.over = true
		return
	}
	g.piece = &Piece{Kind: kind, Rot: 0, X: x, Y: 0}
}
