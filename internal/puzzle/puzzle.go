// apps/go-server/internal/puzzle/puzzle.go
//
// Single-layer puzzle: one clue grid and one authored solution grid.
// Responsibilities:
//   - Constructor-time invariant checks (solution fully filled and
//     internally consistent, every clue equal to the solution).
//   - Solved check against a player's working grid.
//
// Instances are immutable after construction; the player's working board
// is owned by the gameplay layer and only passed in for checks.

package puzzle

// Puzzle is a single-layer (digits) puzzle.
type Puzzle struct {
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	Level      int        `json:"level"`
	Size       int        `json:"size"`
	Clues      int        `json:"clues"`

	initial  Grid
	solution Grid
}

// NewPuzzle validates and builds a single-layer puzzle.
// The solution must be fully filled and satisfy row/col/box uniqueness;
// every nonzero cell of initial must match the solution.
func NewPuzzle(mode Mode, diff Difficulty, level int, initial, solution Grid, clues int) (*Puzzle, error) {
	if initial.Size != solution.Size {
		return nil, &InvalidPuzzleError{Layer: LayerNumber, Reason: "initial and solution sizes differ"}
	}
	if err := checkLayer(LayerNumber, initial, solution); err != nil {
		return nil, err
	}
	return &Puzzle{
		Mode:       mode,
		Difficulty: diff,
		Level:      level,
		Size:       solution.Size,
		Clues:      clues,
		initial:    initial,
		solution:   solution,
	}, nil
}

// checkLayer enforces the per-layer model invariants shared by single
// and combined puzzles.
func checkLayer(l Layer, initial, solution Grid) error {
	for r := 0; r < solution.Size; r++ {
		for c := 0; c < solution.Size; c++ {
			if solution.Cells[r][c] == 0 {
				return &InvalidPuzzleError{Layer: l, Cell: CellCoord{r, c}, Reason: "solution has an empty cell"}
			}
			if v := initial.Cells[r][c]; v != 0 && v != solution.Cells[r][c] {
				return &InvalidPuzzleError{Layer: l, Cell: CellCoord{r, c}, Reason: "clue contradicts solution"}
			}
		}
	}
	if ok, conf := CheckCompletion(solution); !ok {
		return &InvalidPuzzleError{Layer: l, Cell: conf[0], Reason: "solution violates uniqueness"}
	}
	return nil
}

// Initial returns a copy of the clue board.
func (p *Puzzle) Initial() Grid { return p.initial.Clone() }

// Solution returns a copy of the authored solution.
// Never shown directly; used for validation and clue reveals.
func (p *Puzzle) Solution() Grid { return p.solution.Clone() }

// Fixed returns the clue mask: true where the cell is pre-filled.
func (p *Puzzle) Fixed() [][]bool {
	out := make([][]bool, p.Size)
	for r := range out {
		out[r] = make([]bool, p.Size)
		for c := range out[r] {
			out[r][c] = p.initial.Cells[r][c] != 0
		}
	}
	return out
}

// Solved reports whether a working grid completes the puzzle.
// Semantics: exact match against the authored solution. A grid may admit
// other completions that satisfy placement rules; those do not count.
func (p *Puzzle) Solved(working Grid) bool {
	return working.Equal(p.solution)
}
