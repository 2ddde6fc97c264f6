package engine

import (
	"bytes"
	"testing"
)

func mustGame(t *testing.T, rows, cols int, opts Options) *Game {
	t.Helper()
	g, err := New(rows, cols, opts)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, cols, err)
	}
	return g
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 42
	return opts
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 10}, {20, 0}, {-3, 10}, {20, 2}} {
		if _, err := New(tc.rows, tc.cols, testOptions()); err == nil {
			t.Errorf("New(%d, %d): expected error, got nil", tc.rows, tc.cols)
		}
	}
}

func TestNewSpawnsFirstPiece(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	if !g.HasPiece() {
		t.Fatal("Fresh game should have an active piece")
	}
	if g.Score() != 0 {
		t.Errorf("Fresh game score = %d, want 0", g.Score())
	}
	if g.Over() {
		t.Error("Fresh game should not be over")
	}
	if _, y := g.PieceAt(); y != 0 {
		t.Errorf("Spawn row = %d, want 0", y)
	}
}

func TestGravityRespectsInterval(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	_, y0 := g.PieceAt()

	g.Advance(0.4) // below the 0.5s interval
	if _, y := g.PieceAt(); y != y0 {
		t.Errorf("Piece fell before the gravity interval elapsed (y=%d)", y)
	}
	g.Advance(0.2) // accumulator now past the interval
	if _, y := g.PieceAt(); y != y0+1 {
		t.Errorf("Piece at row %d after gravity, want %d", y, y0+1)
	}
	// The accumulator resets after each step.
	g.Advance(0.4)
	if _, y := g.PieceAt(); y != y0+1 {
		t.Error("Accumulator did not reset after a gravity step")
	}
}

func TestZeroDtMakesNoGravityProgress(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	_, y0 := g.PieceAt()
	for i := 0; i < 100; i++ {
		g.Advance(0)
	}
	if _, y := g.PieceAt(); y != y0 {
		t.Errorf("Piece fell on zero-dt ticks (y=%d)", y)
	}
}

func TestMoveCommandsApplyInOrder(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	x0, _ := g.PieceAt()

	g.Push(CmdMoveLeft)
	g.Push(CmdMoveLeft)
	g.Push(CmdMoveRight)
	g.Advance(0)

	if x, _ := g.PieceAt(); x != x0-1 {
		t.Errorf("Piece at col %d after L,L,R, want %d", x, x0-1)
	}
}

func TestHardDropLandsOnFloorInOneTick(t *testing.T) {
	for _, k := range allKinds() {
		g := mustGame(t, 20, 10, testOptions())
		g.piece = &Piece{Kind: k, Rot: 0, X: spawnX(g.board, k), Y: 0}

		g.Push(CmdHardDrop)
		g.Advance(0)

		// Lowest filled cell of the locked piece must rest on the floor.
		lowest := -1
		cells := g.BoardCells()
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				if cells[r*g.Cols()+c] != 0 {
					lowest = r
				}
			}
		}
		if lowest != g.Rows()-1 {
			t.Errorf("%v: lowest locked cell at row %d, want %d", k, lowest, g.Rows()-1)
		}
	}
}

func TestHardDropSpawnsNextPieceSameTick(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	g.Push(CmdHardDrop)
	g.Advance(0)

	if !g.HasPiece() {
		t.Fatal("Next piece should spawn in the same tick as a hard drop")
	}
	if _, y := g.PieceAt(); y != 0 {
		t.Errorf("Next piece spawned at row %d, want 0", y)
	}
}

func TestSoftDropMovesOneRow(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	_, y0 := g.PieceAt()
	g.Push(CmdSoftDrop)
	g.Advance(0)
	if _, y := g.PieceAt(); y != y0+1 {
		t.Errorf("Soft drop moved piece to row %d, want %d", y, y0+1)
	}
}

func TestSingleLineClearScore(t *testing.T) {
	opts := testOptions()
	g := mustGame(t, 20, 10, opts)
	// Fill the bottom row except the four columns an I piece will fill.
	for c := 0; c < 10; c++ {
		if c < 3 || c > 6 {
			g.board.cells[19*10+c] = 1
		}
	}
	g.piece = &Piece{Kind: KindI, Rot: 0, X: 3, Y: 0}

	g.Push(CmdHardDrop)
	g.Advance(0)

	want := opts.PiecePoints + opts.LinePoints[0]
	if g.Score() != want {
		t.Errorf("Score after single clear = %d, want %d", g.Score(), want)
	}
	// The cleared row leaves only the original filler gone; board is empty.
	if n := occupiedCount(g.board); n != 0 {
		t.Errorf("Board has %d occupied cells after clear, want 0", n)
	}
}

func TestQuadrupleClearBeatsFourSingles(t *testing.T) {
	opts := testOptions()
	g := mustGame(t, 20, 10, opts)
	// Fill the bottom four rows except column 7, then drop a vertical I
	// into the gap to complete all four at once.
	for r := 16; r < 20; r++ {
		for c := 0; c < 10; c++ {
			if c != 7 {
				g.board.cells[r*10+c] = 1
			}
		}
	}
	g.piece = &Piece{Kind: KindI, Rot: 1, X: 5, Y: 0} // footprint col 2 -> board col 7

	g.Push(CmdHardDrop)
	g.Advance(0)

	want := opts.PiecePoints + opts.LinePoints[3]
	if g.Score() != want {
		t.Errorf("Score after quadruple clear = %d, want %d", g.Score(), want)
	}
	if opts.LinePoints[3] <= 4*opts.LinePoints[0] {
		t.Errorf("Quadruple bonus %d should exceed 4x single bonus %d",
			opts.LinePoints[3], 4*opts.LinePoints[0])
	}
	if n := occupiedCount(g.board); n != 0 {
		t.Errorf("Board has %d occupied cells after quadruple clear, want 0", n)
	}
}

func TestSpawnCollisionFreezesGame(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	// Fill everything below row 2 except one column, so locking the
	// current piece at the top forces the next spawn to collide.
	for r := 2; r < 20; r++ {
		for c := 1; c < 10; c++ {
			g.board.cells[r*10+c] = 1
		}
	}
	g.piece = &Piece{Kind: KindO, Rot: 0, X: 4, Y: 0}

	g.Push(CmdHardDrop)
	g.Advance(0)

	if !g.Over() {
		t.Fatal("Colliding spawn should end the game")
	}
	if g.HasPiece() {
		t.Error("No piece should be active after game over")
	}

	// Everything is frozen: ticks and commands are no-ops.
	score := g.Score()
	board := g.BoardCells()
	g.Push(CmdMoveLeft)
	g.Push(CmdHardDrop)
	for i := 0; i < 10; i++ {
		g.Advance(1.0)
	}
	if g.Score() != score {
		t.Errorf("Score changed after game over: %d -> %d", score, g.Score())
	}
	if !bytes.Equal(board, g.BoardCells()) {
		t.Error("Board changed after game over")
	}
}

func TestShadowMatchesHardDropLanding(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	sx, sy := g.ShadowAt()
	px, _ := g.PieceAt()
	if sx != px {
		t.Errorf("Shadow col %d differs from piece col %d", sx, px)
	}

	kind, rot := g.piece.Kind, g.piece.Rot
	g.Push(CmdHardDrop)
	g.Advance(0)

	// The locked cells must sit exactly where the shadow projected.
	fp := kind.Footprint(rot)
	cells := g.BoardCells()
	for row := 0; row < fp.Size(); row++ {
		for col := 0; col < fp.Size(); col++ {
			if fp.Cell(row, col) == 0 {
				continue
			}
			if cells[(sy+row)*g.Cols()+(sx+col)] == 0 {
				t.Errorf("Expected locked cell at (%d,%d) per shadow projection", sy+row, sx+col)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := mustGame(t, 20, 10, testOptions())
		for i := 0; i < 200; i++ {
			switch i % 7 {
			case 1:
				g.Push(CmdMoveLeft)
			case 3:
				g.Push(CmdRotate)
			case 5:
				g.Push(CmdMoveRight)
			case 6:
				g.Push(CmdHardDrop)
			}
			g.Advance(0.1)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score {
		t.Errorf("Score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Over != s2.Over {
		t.Errorf("Over mismatch: %v vs %v", s1.Over, s2.Over)
	}
	if s1.PieceKind != s2.PieceKind || s1.PieceRot != s2.PieceRot ||
		s1.PieceX != s2.PieceX || s1.PieceY != s2.PieceY {
		t.Errorf("Piece mismatch: %v r%d (%d,%d) vs %v r%d (%d,%d)",
			s1.PieceKind, s1.PieceRot, s1.PieceX, s1.PieceY,
			s2.PieceKind, s2.PieceRot, s2.PieceX, s2.PieceY)
	}
	if !bytes.Equal(s1.Board, s2.Board) {
		t.Error("Board mismatch between identically seeded runs")
	}
}

func TestBoardBufferIsACopy(t *testing.T) {
	g := mustGame(t, 20, 10, testOptions())
	cells := g.BoardCells()
	for i := range cells {
		cells[i] = 9
	}
	if bytes.Contains(g.BoardCells(), []byte{9}) {
		t.Error("BoardCells exposes internal storage")
	}
}
