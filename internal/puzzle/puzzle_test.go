package puzzle

import "testing"

// maskClues zeroes every cell not listed in keep.
func maskClues(g Grid, keep []CellCoord) Grid {
	out, _ := NewGrid(g.Size)
	for _, cc := range keep {
		out.Cells[cc.Row][cc.Col] = g.Cells[cc.Row][cc.Col]
	}
	return out
}

func TestNewPuzzleValid(t *testing.T) {
	sol := solvedGrid(t, 9)
	ini := maskClues(sol, []CellCoord{{0, 0}, {4, 4}, {8, 8}})
	p, err := NewPuzzle(ModeStandard, DifficultyEasy, 1, ini, sol, 3)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if p.Size != 9 || p.Clues != 3 {
		t.Errorf("size/clues = %d/%d, want 9/3", p.Size, p.Clues)
	}
	fixed := p.Fixed()
	if !fixed[4][4] || fixed[0][1] {
		t.Error("clue mask wrong")
	}
	if !p.Solved(sol) {
		t.Error("authored solution not accepted as solved")
	}
	alt := sol.Clone()
	alt.Cells[0][1], alt.Cells[0][2] = alt.Cells[0][2], alt.Cells[0][1]
	if p.Solved(alt) {
		t.Error("non-matching completion accepted as solved")
	}
}

func TestNewPuzzleRejects(t *testing.T) {
	sol := solvedGrid(t, 6)

	holed := sol.Clone()
	holed.Cells[2][3] = 0

	contradicting := maskClues(sol, []CellCoord{{1, 1}})
	contradicting.Cells[1][1] = sol.Cells[1][1]%6 + 1

	broken := sol.Clone()
	broken.Cells[0][0] = broken.Cells[0][1] // duplicate in row 0

	tests := []struct {
		name     string
		initial  Grid
		solution Grid
	}{
		{"solution with hole", maskClues(sol, nil), holed},
		{"clue contradicts solution", contradicting, sol},
		{"solution violates uniqueness", maskClues(sol, nil), broken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPuzzle(ModeMini, DifficultyEasy, 1, tt.initial, tt.solution, 0)
			if err == nil {
				t.Fatal("want InvalidPuzzleError, got nil")
			}
			if _, ok := err.(*InvalidPuzzleError); !ok {
				t.Errorf("error type %T, want *InvalidPuzzleError", err)
			}
		})
	}
}

func TestCluesMatchSolutionEverywhere(t *testing.T) {
	sol := solvedGrid(t, 6)
	ini := maskClues(sol, []CellCoord{{0, 0}, {1, 2}, {5, 5}})
	p, err := NewPuzzle(ModeMini, DifficultyMedium, 2, ini, sol, 3)
	if err != nil {
		t.Fatal(err)
	}
	in, so := p.Initial(), p.Solution()
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			if v := in.Cells[r][c]; v != 0 && v != so.Cells[r][c] {
				t.Fatalf("clue (%d,%d)=%d differs from solution %d", r, c, v, so.Cells[r][c])
			}
		}
	}
}
