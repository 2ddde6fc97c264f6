package engine

// Read-only projection of engine state for the renderer. None of these
// methods mutate the game; they are safe to call at any point between
// ticks. Cell buffers are row-major copies, one byte per cell (0 empty,
// 1..7 color) — this layout is the stable boundary contract.

// Rows returns the board height in cells.
func (g *Game) Rows() int {
	return g.board.Rows()
}

// Cols returns the board width in cells.
func (g *Game) Cols() int {
	return g.board.Cols()
}

// BoardCells returns a row-major copy of the board's cell buffer,
// length Rows x Cols.
func (g *Game) BoardCells() []byte {
	return g.board.Cells()
}

// Score returns the accumulated score. Monotonically non-decreasing.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the total number of rows cleared over the game's lifetime.
func (g *Game) Lines() int {
	return g.lines
}

// Over reports whether the game reached its terminal state. Once set,
// only constructing a fresh game resumes play.
func (g *Game) Over() bool {
	return g.over
}

// HasPiece reports whether an active piece exists. False only after
// game over.
func (g *Game) HasPiece() bool {
	return g.piece != nil
}

// PieceSize returns the active piece's square footprint dimension, or 0
// when no piece is active.
func (g *Game) PieceSize() int {
	if g.piece == nil {
		return 0
	}
	return g.piece.Footprint().Size()
}

// PieceCells returns a row-major copy of the active piece's footprint
// buffer, length PieceSize squared, or nil when no piece is active.
func (g *Game) PieceCells() []byte {
	if g.piece == nil {
		return nil
	}
	return g.piece.Footprint().Cells()
}

// PieceAt returns the board-relative (col, row) of the active piece's
// footprint origin.
func (g *Game) PieceAt() (x, y int) {
	if g.piece == nil {
		return 0, 0
	}
	return g.piece.X, g.piece.Y
}

// ShadowAt returns the board-relative (col, row) where the active piece
// would land if dropped straight down — the ghost piece position.
func (g *Game) ShadowAt() (x, y int) {
	if g.piece == nil {
		return 0, 0
	}
	return g.piece.X, g.piece.ShadowY(g.board)
}

// Snapshot captures the complete observable game state for determinism
// testing.
type Snapshot struct {
	Score     int
	Over      bool
	PieceKind Kind
	PieceRot  int
	PieceX    int
	PieceY    int
	ShadowY   int
	Board     []byte
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Score: g.score,
		Over:  g.over,
		Board: g.BoardCells(),
	}
	if g.piece != nil {
		s.PieceKind = g.piece.Kind
		s.PieceRot = g.piece.Rot
		s.PieceX = g.piece.X
		s.PieceY = g.piece.Y
		s.ShadowY = g.piece.ShadowY(g.board)
	}
	return s
}
