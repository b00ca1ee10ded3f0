// apps/go-server/internal/puzzle/grid.go
//
// Grid: the fixed-size N×N cell container shared by every puzzle flavor.
// Responsibilities:
//   - Construction with shape/domain checks (never jagged, N in {4,6,9}).
//   - Row-major reshape from the flat digit strings shipped in level packs,
//     and the inverse flattening (round-trip safe).

package puzzle

import (
	"fmt"
	"strings"
)

// Grid is an N×N matrix of symbols. The zero symbol marks an empty cell.
type Grid struct {
	Size  int        `json:"size"`
	Cells [][]Symbol `json:"cells"`
}

// validSize reports whether n is a playable board size.
func validSize(n int) bool { return n == 4 || n == 6 || n == 9 }

// NewGrid returns an empty n×n grid.
func NewGrid(n int) (Grid, error) {
	if !validSize(n) {
		return Grid{}, fmt.Errorf("grid size %d not in {4,6,9}", n)
	}
	cells := make([][]Symbol, n)
	for r := range cells {
		cells[r] = make([]Symbol, n)
	}
	return Grid{Size: n, Cells: cells}, nil
}

// GridFromRows builds a grid from decoded row data, rejecting jagged
// input and values outside [0, n].
func GridFromRows(n int, rows [][]int) (Grid, error) {
	if !validSize(n) {
		return Grid{}, fmt.Errorf("grid size %d not in {4,6,9}", n)
	}
	if len(rows) != n {
		return Grid{}, fmt.Errorf("expected %d rows, got %d", n, len(rows))
	}
	g, _ := NewGrid(n)
	for r, row := range rows {
		if len(row) != n {
			return Grid{}, fmt.Errorf("row %d has %d cells, want %d", r, len(row), n)
		}
		for c, v := range row {
			if v < 0 || v > n {
				return Grid{}, fmt.Errorf("cell (%d,%d) value %d outside [0,%d]", r, c, v, n)
			}
			g.Cells[r][c] = Symbol(v)
		}
	}
	return g, nil
}

// GridFromString reshapes a flat digit string of length n² into an n×n
// grid by row-major slicing: cell (r,c) = digit at r*n + c.
func GridFromString(n int, s string) (Grid, error) {
	if !validSize(n) {
		return Grid{}, fmt.Errorf("grid size %d not in {4,6,9}", n)
	}
	if len(s) != n*n {
		return Grid{}, fmt.Errorf("flat string length %d, want %d", len(s), n*n)
	}
	g, _ := NewGrid(n)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return Grid{}, fmt.Errorf("non-digit character %q at offset %d", ch, i)
		}
		v := Symbol(ch - '0')
		if int(v) > n {
			return Grid{}, fmt.Errorf("digit %d at offset %d outside [0,%d]", v, i, n)
		}
		g.Cells[i/n][i%n] = v
	}
	return g, nil
}

// FlatString is the inverse of GridFromString.
func (g Grid) FlatString() string {
	var b strings.Builder
	b.Grow(g.Size * g.Size)
	for _, row := range g.Cells {
		for _, v := range row {
			b.WriteByte('0' + byte(v))
		}
	}
	return b.String()
}

// At returns the symbol at (r,c).
func (g Grid) At(r, c int) Symbol { return g.Cells[r][c] }

// Full reports whether every cell is nonzero.
func (g Grid) Full() bool {
	for _, row := range g.Cells {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy. Puzzle instances hand out clones so callers
// can't reach into the immutable authored grids.
func (g Grid) Clone() Grid {
	out, _ := NewGrid(g.Size)
	for r := range g.Cells {
		copy(out.Cells[r], g.Cells[r])
	}
	return out
}

// Equal reports cell-for-cell equality.
func (g Grid) Equal(o Grid) bool {
	if g.Size != o.Size {
		return false
	}
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}
