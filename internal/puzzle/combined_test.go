package puzzle

import "testing"

// rotateValues maps every symbol v to (v mod n)+1, producing a distinct
// valid solution from the same base grid.
func rotateValues(g Grid, by int) Grid {
	out := g.Clone()
	n := Symbol(g.Size)
	for r := range out.Cells {
		for c := range out.Cells[r] {
			out.Cells[r][c] = (out.Cells[r][c]-1+Symbol(by))%n + 1
		}
	}
	return out
}

func combinedFixture(t *testing.T, n, layers int, keep []CellCoord) (ini, sol []Grid) {
	t.Helper()
	base := solvedGrid(t, n)
	for i := 0; i < layers; i++ {
		s := rotateValues(base, i)
		sol = append(sol, s)
		ini = append(ini, maskClues(s, keep))
	}
	return ini, sol
}

func TestNewCombinedPuzzleValid(t *testing.T) {
	keep := []CellCoord{{0, 0}, {2, 3}, {5, 1}}
	ini, sol := combinedFixture(t, 6, 3, keep)
	p, err := NewCombinedPuzzle(DifficultyHard, 1, LayersShapeColorNumber, ini, sol, len(keep), LayerShape)
	if err != nil {
		t.Fatalf("NewCombinedPuzzle: %v", err)
	}
	if p.Set.Count() != 3 || p.Size != 6 {
		t.Errorf("set/size = %d/%d, want 3/6", p.Set.Count(), p.Size)
	}
	if !p.FixedAt(2, 3) || p.FixedAt(2, 4) {
		t.Error("FixedAt disagrees with clue mask")
	}
	if p.SelectedLayer() != LayerShape {
		t.Errorf("selected layer %v, want shape", p.SelectedLayer())
	}
	if !p.Solved(p.Solution()) {
		t.Error("authored solutions not accepted as solved")
	}
	// one layer off the canonical solution: not solved even if still valid
	working := p.Solution()
	working[1] = rotateValues(working[1], 1)
	if p.Solved(working) {
		t.Error("layer differing from authored solution accepted")
	}
}

func TestSharedClueInvariant(t *testing.T) {
	keep := []CellCoord{{0, 0}, {3, 3}}
	ini, sol := combinedFixture(t, 6, 2, keep)
	// break the invariant: clue present in layer 0 only
	ini[0].Cells[1][1] = sol[0].Cells[1][1]
	_, err := NewCombinedPuzzle(DifficultyMedium, 1, LayersShapeColor, ini, sol, 3, LayerShape)
	if err == nil {
		t.Fatal("mixed clue/empty cell accepted")
	}
	ipe, ok := err.(*InvalidPuzzleError)
	if !ok {
		t.Fatalf("error type %T, want *InvalidPuzzleError", err)
	}
	if ipe.Cell != (CellCoord{1, 1}) {
		t.Errorf("conflict cell %v, want (1,1)", ipe.Cell)
	}
}

func TestCombinedEveryCoordinateAllOrNone(t *testing.T) {
	keep := []CellCoord{{0, 2}, {4, 4}, {5, 0}}
	ini, sol := combinedFixture(t, 6, 3, keep)
	p, err := NewCombinedPuzzle(DifficultyHard, 2, LayersShapeColorNumber, ini, sol, len(keep), LayerColor)
	if err != nil {
		t.Fatal(err)
	}
	grids := p.Initial()
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			nonzero := 0
			for _, g := range grids {
				if g.Cells[r][c] != 0 {
					nonzero++
				}
			}
			if nonzero != 0 && nonzero != len(grids) {
				t.Fatalf("cell (%d,%d): %d of %d layers filled", r, c, nonzero, len(grids))
			}
		}
	}
}

func TestNewCombinedPuzzleGridCountMismatch(t *testing.T) {
	ini, sol := combinedFixture(t, 6, 2, []CellCoord{{0, 0}})
	if _, err := NewCombinedPuzzle(DifficultyHard, 1, LayersShapeColorNumber, ini, sol, 1, LayerShape); err == nil {
		t.Error("two grids accepted for a three-layer set")
	}
}

func TestLayerSetFor(t *testing.T) {
	if s, ok := LayerSetFor(2); !ok || s != LayersShapeColor {
		t.Error("LayerSetFor(2)")
	}
	if s, ok := LayerSetFor(3); !ok || s != LayersShapeColorNumber {
		t.Error("LayerSetFor(3)")
	}
	if _, ok := LayerSetFor(1); ok {
		t.Error("LayerSetFor(1) accepted")
	}
}
