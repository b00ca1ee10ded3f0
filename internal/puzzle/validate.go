// apps/go-server/internal/puzzle/validate.go
//
// Pure board validation: row/column/box uniqueness over one layer's grid.
// Bitmask scan, one mask per unit; a duplicate symbol reports the cell
// where the repeat was seen.

package puzzle

// BoxDims returns the sub-box dimensions (rows, cols) for a board size.
// boxRows*boxCols == n for every supported size: 4→2x2, 6→2x3, 9→3x3.
func BoxDims(n int) (rows, cols int) {
	switch n {
	case 4:
		return 2, 2
	case 6:
		return 2, 3
	default:
		return 3, 3
	}
}

// CheckCompletion verifies that a fully filled grid contains each symbol
// in [1,n] exactly once per row, column, and box. Returned conflicts name
// the offending cells; an empty cell is itself a conflict since only
// completed grids can satisfy the property.
func CheckCompletion(g Grid) (ok bool, conflicts []CellCoord) {
	n := g.Size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g.Cells[r][c] == 0 {
				conflicts = append(conflicts, CellCoord{Row: r, Col: c})
			}
		}
	}
	// rows
	for r := 0; r < n; r++ {
		m := 0
		for c := 0; c < n; c++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conflicts = append(conflicts, CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < n; c++ {
		m := 0
		for r := 0; r < n; r++ {
			val := g.Cells[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conflicts = append(conflicts, CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	bR, bC := BoxDims(n)
	for br := 0; br < n; br += bR {
		for bc := 0; bc < n; bc += bC {
			m := 0
			for dr := 0; dr < bR; dr++ {
				for dc := 0; dc < bC; dc++ {
					val := g.Cells[br+dr][bc+dc]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conflicts = append(conflicts, CellCoord{Row: br + dr, Col: bc + dc})
					}
					m |= bit
				}
			}
		}
	}
	return len(conflicts) == 0, conflicts
}
