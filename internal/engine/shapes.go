// Package engine implements the falling-block game core: board state,
// piece collision, gravity timing, line clearing and scoring. It contains
// no external dependencies (especially no Bubble Tea) so the rules stay
// pure and testable; the platform layer handles input mapping, timing and
// rendering.
package engine

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// String returns the canonical one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the kind's cell value (1..7). Zero is reserved for empty.
func (k Kind) Color() uint8 {
	return uint8(k) + 1
}

// Footprint is the immutable cell matrix of one rotation state.
// Cells are row-major in a Size x Size square; a non-zero cell carries
// the kind's color value.
type Footprint struct {
	size  int
	cells []uint8
}

// Size returns the footprint's square dimension.
func (f Footprint) Size() int {
	return f.size
}

// Cell returns the value at (row, col) within the footprint.
// Out-of-range coordinates return 0.
func (f Footprint) Cell(row, col int) uint8 {
	if row < 0 || row >= f.size || col < 0 || col >= f.size {
		return 0
	}
	return f.cells[row*f.size+col]
}

// Cells returns a row-major copy of the footprint's cell buffer.
func (f Footprint) Cells() []byte {
	return append([]byte(nil), f.cells...)
}

// FilledCount returns the number of non-empty cells.
func (f Footprint) FilledCount() int {
	n := 0
	for _, c := range f.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Base shapes in spawn orientation. Values double as color indices.
var baseShapes = [KindCount][][]uint8{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	KindO: {
		{4, 4},
		{4, 4},
	},
	KindS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	KindT: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	KindZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// Distinct rotation states per kind. Symmetric kinds cycle early:
// O is invariant, I/S/Z repeat after two quarter turns.
var rotationCounts = [KindCount]int{
	KindI: 2,
	KindJ: 4,
	KindL: 4,
	KindO: 1,
	KindS: 2,
	KindT: 4,
	KindZ: 2,
}

// catalog holds every precomputed rotation state, keyed by (kind, rotation).
var catalog [KindCount][]Footprint

func init() {
	for k := range catalog {
		states := rotationCounts[k]
		shape := baseShapes[k]
		catalog[k] = make([]Footprint, 0, states)
		for r := 0; r < states; r++ {
			catalog[k] = append(catalog[k], footprintFrom(shape))
			shape = rotateRight(shape)
		}
	}
}

// footprintFrom flattens a square cell matrix into an immutable Footprint.
func footprintFrom(shape [][]uint8) Footprint {
	size := len(shape)
	cells := make([]uint8, 0, size*size)
	for _, row := range shape {
		cells = append(cells, row...)
	}
	return Footprint{size: size, cells: cells}
}

// rotateRight returns the matrix rotated a quarter turn clockwise:
// transpose, then reverse each row.
func rotateRight(shape [][]uint8) [][]uint8 {
	size := len(shape)
	out := make([][]uint8, size)
	for r := range out {
		out[r] = make([]uint8, size)
		for c := range out[r] {
			out[r][c] = shape[size-1-c][r]
		}
	}
	return out
}

// Rotations returns the number of distinct rotation states for the kind.
func (k Kind) Rotations() int {
	return rotationCounts[k]
}

// Footprint returns the precomputed cell matrix for the given rotation state.
func (k Kind) Footprint(rot int) Footprint {
	return catalog[k][rot%k.Rotations()]
}

// NextRotation returns the rotation index following rot in the kind's
// fixed cyclic order.
func NextRotation(k Kind, rot int) int {
	return (rot + 1) % k.Rotations()
}
