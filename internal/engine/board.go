package engine

import "fmt"

// Board is the fixed-size playfield grid. Each cell holds 0 for empty or
// a color value 1..7. Dimensions never change after creation.
type Board struct {
	rows  int
	cols  int
	cells []uint8 // row-major
}

// NewBoard creates an empty board. Dimensions must be positive.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("engine: invalid board size %dx%d", rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
	}, nil
}

// Rows returns the board height in cells.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width in cells.
func (b *Board) Cols() int {
	return b.cols
}

// Occupied reports whether the cell at (row, col) is filled.
// Out-of-range coordinates count as occupied, so the edges act as
// implicit walls and collision checks need no separate bounds test.
func (b *Board) Occupied(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return true
	}
	return b.cells[row*b.cols+col] != 0
}

// At returns the cell value at (row, col), or 0 for out-of-range.
func (b *Board) At(row, col int) uint8 {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return 0
	}
	return b.cells[row*b.cols+col]
}

// Cells returns a row-major copy of the cell buffer.
// One byte per cell: 0 empty, 1..7 color. This layout is the stable
// handoff contract with the renderer.
func (b *Board) Cells() []byte {
	return append([]byte(nil), b.cells...)
}

// CellPos is one filled cell of a piece mapped to board coordinates.
type CellPos struct {
	Row, Col int
	Value    uint8
}

// Lock writes a piece's cells permanently into the grid. The caller must
// have validated the placement via WouldCollide; writing out of bounds or
// into an occupied cell means a collision check was bypassed, which is a
// programming error.
func (b *Board) Lock(cells []CellPos) {
	for _, c := range cells {
		if c.Row < 0 || c.Row >= b.rows || c.Col < 0 || c.Col >= b.cols {
			panic(fmt.Sprintf("engine: lock out of bounds at (%d,%d)", c.Row, c.Col))
		}
		idx := c.Row*b.cols + c.Col
		if b.cells[idx] != 0 {
			panic(fmt.Sprintf("engine: lock into occupied cell (%d,%d)", c.Row, c.Col))
		}
		b.cells[idx] = c.Value
	}
}

// ClearFullRows removes every completely filled row and shifts the rows
// above down by the number of cleared rows below them. Which rows are
// full is decided from the pre-clear state before any mutation, so the
// result is independent of scan direction. Returns the number of rows
// cleared.
func (b *Board) ClearFullRows() int {
	full := make([]bool, b.rows)
	cleared := 0
	for r := 0; r < b.rows; r++ {
		isFull := true
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] == 0 {
				isFull = false
				break
			}
		}
		if isFull {
			full[r] = true
			cleared++
		}
	}
	if cleared == 0 {
		return 0
	}

	// Compact surviving rows toward the bottom, then blank the top.
	dst := b.rows - 1
	for src := b.rows - 1; src >= 0; src-- {
		if full[src] {
			continue
		}
		if dst != src {
			copy(b.cells[dst*b.cols:(dst+1)*b.cols], b.cells[src*b.cols:(src+1)*b.cols])
		}
		dst--
	}
	for r := dst; r >= 0; r-- {
		for c := 0; c < b.cols; c++ {
			b.cells[r*b.cols+c] = 0
		}
	}
	return cleared
}
