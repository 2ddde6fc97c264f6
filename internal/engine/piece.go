package engine

// Piece is the active falling piece: its kind, rotation state, and the
// board-relative position of its footprint's top-left corner. While a
// piece is active its filled cells never overlap an occupied board cell
// and never leave the board; every mutation is validated before commit.
type Piece struct {
	Kind Kind
	Rot  int
	X    int // column of the footprint origin
	Y    int // row of the footprint origin
}

// WouldCollide reports whether the given kind/rotation placed at (x, y)
// would overlap an occupied board cell or leave the board. Pure function,
// no mutation.
func WouldCollide(b *Board, k Kind, rot, x, y int) bool {
	fp := k.Footprint(rot)
	size := fp.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if fp.Cell(row, col) == 0 {
				continue
			}
			if b.Occupied(y+row, x+col) {
				return true
			}
		}
	}
	return false
}

// Footprint returns the piece's current rotation-state cell matrix.
func (p *Piece) Footprint() Footprint {
	return p.Kind.Footprint(p.Rot)
}

// TryMove shifts the piece by (dx, dy) if the destination is free.
// A colliding move is silently rejected and leaves the piece unchanged.
// Reports whether the move was committed.
func (p *Piece) TryMove(b *Board, dx, dy int) bool {
	if WouldCollide(b, p.Kind, p.Rot, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// TryRotate advances the piece to its next rotation state if the rotated
// footprint fits at the current position. There is no wall-kick search:
// a rotation that would collide simply fails and the piece is unchanged.
// Reports whether the rotation was committed.
func (p *Piece) TryRotate(b *Board) bool {
	next := NextRotation(p.Kind, p.Rot)
	if WouldCollide(b, p.Kind, next, p.X, p.Y) {
		return false
	}
	p.Rot = next
	return true
}

// ShadowY returns the lowest origin row the piece can reach by falling
// straight down from its current position. Pure projection for the ghost
// piece; the actual piece is not moved.
func (p *Piece) ShadowY(b *Board) int {
	y := p.Y
	for !WouldCollide(b, p.Kind, p.Rot, p.X, y+1) {
		y++
	}
	return y
}

// cells maps the piece's filled footprint cells into board coordinates.
func (p *Piece) cells() []CellPos {
	fp := p.Footprint()
	size := fp.Size()
	out := make([]CellPos, 0, fp.FilledCount())
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if v := fp.Cell(row, col); v != 0 {
				out = append(out, CellPos{Row: p.Y + row, Col: p.X + col, Value: v})
			}
		}
	}
	return out
}
