package puzzle

import "fmt"

// InvalidPuzzleError reports a constructed puzzle that violates a model
// invariant: a hole in the solution, a clue that contradicts the
// solution, or clue/empty status disagreeing across layers.
type InvalidPuzzleError struct {
	Layer  Layer
	Cell   CellCoord
	Reason string
}

func (e *InvalidPuzzleError) Error() string {
	return fmt.Sprintf("invalid puzzle: %s layer, cell (%d,%d): %s",
		e.Layer, e.Cell.Row, e.Cell.Col, e.Reason)
}
