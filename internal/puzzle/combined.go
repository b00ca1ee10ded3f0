// apps/go-server/internal/puzzle/combined.go
//
// Combined (multi-layer) puzzle: parallel grids, one per layer, sharing
// clue positions. The shared-clue invariant is the load-bearing rule:
// a cell is a clue in every layer or empty in every layer, so "fixed" is
// a property of the position, not of any one layer.

package puzzle

// CombinedPuzzle is a multi-layer puzzle over parallel grids.
type CombinedPuzzle struct {
	Difficulty Difficulty `json:"difficulty"`
	Level      int        `json:"level"`
	Size       int        `json:"size"`
	Clues      int        `json:"clues"`
	Set        LayerSet   `json:"layerSet"`

	// grids in layer order: index 0 = shape, 1 = color, optional 2 = number
	initial  []Grid
	solution []Grid

	// input focus default for the gameplay layer
	selected Layer
}

// NewCombinedPuzzle validates and builds a combined puzzle.
// initial and solution are in layer order and must have one grid per
// active layer, all of the same size. Enforced invariants, per layer:
// the single-layer checks of NewPuzzle; across layers: the shared-clue
// invariant at every coordinate.
func NewCombinedPuzzle(diff Difficulty, level int, set LayerSet, initial, solution []Grid, clues int, selected Layer) (*CombinedPuzzle, error) {
	layers := set.Layers()
	if len(initial) != len(layers) || len(solution) != len(layers) {
		return nil, &InvalidPuzzleError{Layer: LayerShape, Reason: "grid count does not match layer set"}
	}
	size := solution[0].Size
	for i, l := range layers {
		if initial[i].Size != size || solution[i].Size != size {
			return nil, &InvalidPuzzleError{Layer: l, Reason: "layer sizes differ"}
		}
		if err := checkLayer(l, initial[i], solution[i]); err != nil {
			return nil, err
		}
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			fixed := initial[0].Cells[r][c] != 0
			for i, l := range layers[1:] {
				if (initial[i+1].Cells[r][c] != 0) != fixed {
					return nil, &InvalidPuzzleError{Layer: l, Cell: CellCoord{r, c},
						Reason: "clue status differs across layers"}
				}
			}
		}
	}
	return &CombinedPuzzle{
		Difficulty: diff,
		Level:      level,
		Size:       size,
		Clues:      clues,
		Set:        set,
		initial:    initial,
		solution:   solution,
		selected:   selected,
	}, nil
}

// SelectedLayer is the default layer given input focus.
func (p *CombinedPuzzle) SelectedLayer() Layer { return p.selected }

// Initial returns copies of the clue grids in layer order.
func (p *CombinedPuzzle) Initial() []Grid { return cloneGrids(p.initial) }

// Solution returns copies of the authored solutions in layer order.
func (p *CombinedPuzzle) Solution() []Grid { return cloneGrids(p.solution) }

func cloneGrids(gs []Grid) []Grid {
	out := make([]Grid, len(gs))
	for i, g := range gs {
		out[i] = g.Clone()
	}
	return out
}

// FixedAt reports whether (r,c) is a clue position. Well defined by the
// shared-clue invariant: the answer is the same for every layer.
func (p *CombinedPuzzle) FixedAt(r, c int) bool {
	return p.initial[0].Cells[r][c] != 0
}

// Solved reports whether the working grids (one per layer, layer order)
// complete the puzzle. Every layer must match its authored solution
// exactly; independent row/col/box validity alone is not enough, since a
// layer may admit completions besides the canonical one.
func (p *CombinedPuzzle) Solved(working []Grid) bool {
	if len(working) != len(p.solution) {
		return false
	}
	for i := range p.solution {
		if !working[i].Equal(p.solution[i]) {
			return false
		}
	}
	return true
}
