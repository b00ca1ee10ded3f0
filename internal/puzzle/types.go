// apps/go-server/internal/puzzle/types.go
//
// Core type definitions for the puzzle model.
// Defines:
//   - Symbol: a single cell value (0 = empty).
//   - Layer / LayerSet: the parallel symbol dimensions of combined mode.
//   - Mode / Difficulty: the category axes progress is tracked on.

package puzzle

import (
	"fmt"
	"strconv"
)

// Symbol is a single cell value in [0, gridSize].
// 0 means the cell is empty; nonzero is a clue or a player entry.
type Symbol uint8

// MarshalJSON emits the symbol as a bare number. encoding/json treats
// any slice of uint8-kind elements as bytes and base64-encodes it
// unless the element type marshals itself, so without this a grid's
// rows would serialize as base64 strings.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// UnmarshalJSON accepts a bare number in [0, 255].
func (s *Symbol) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(string(b), 10, 8)
	if err != nil {
		return fmt.Errorf("symbol: %w", err)
	}
	*s = Symbol(v)
	return nil
}

// Layer identifies one of the parallel symbol dimensions superimposed
// on a combined grid.
type Layer int

const (
	LayerShape Layer = iota
	LayerColor
	LayerNumber
)

func (l Layer) String() string {
	switch l {
	case LayerShape:
		return "shape"
	case LayerColor:
		return "color"
	case LayerNumber:
		return "number"
	}
	return "unknown"
}

// LayerSet is the tagged set of layers active in a combined puzzle.
// Lower tiers play shape+color; higher tiers add the number layer.
// Modeled as a variant rather than a nullable layer so callers can't
// index a layer that isn't there.
type LayerSet int

const (
	LayersShapeColor LayerSet = iota
	LayersShapeColorNumber
)

// Layers returns the active layers in asset order
// (index 0 = shape, 1 = color, optional 2 = number).
func (s LayerSet) Layers() []Layer {
	if s == LayersShapeColorNumber {
		return []Layer{LayerShape, LayerColor, LayerNumber}
	}
	return []Layer{LayerShape, LayerColor}
}

// Count reports how many layers are active.
func (s LayerSet) Count() int {
	if s == LayersShapeColorNumber {
		return 3
	}
	return 2
}

// LayerSetFor maps an asset layer count to a LayerSet.
// Returns false for counts other than 2 or 3.
func LayerSetFor(n int) (LayerSet, bool) {
	switch n {
	case 2:
		return LayersShapeColor, true
	case 3:
		return LayersShapeColorNumber, true
	}
	return 0, false
}

// Mode selects a puzzle family. Mini and Standard are single-layer
// (digits only); Crazy is the combined multi-layer family.
type Mode string

const (
	ModeMini     Mode = "mini"
	ModeStandard Mode = "standard"
	ModeCrazy    Mode = "crazy"
)

// Difficulty is a rung on a mode's ladder.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
	DifficultyMaster Difficulty = "master"
)

// Ladder returns a mode's difficulty rungs in unlock order, or nil for
// an unknown mode. The last rung is the gated one.
func (m Mode) Ladder() []Difficulty {
	switch m {
	case ModeMini, ModeStandard:
		return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert, DifficultyMaster}
	case ModeCrazy:
		return []Difficulty{DifficultyMedium, DifficultyHard, DifficultyExpert}
	}
	return nil
}

// GridSize reports the board size a (mode, difficulty) pair plays on:
// mini is 6x6, standard 9x9; crazy is 6x6 except its expert tier (9x9).
func GridSize(m Mode, d Difficulty) int {
	switch m {
	case ModeMini:
		return 6
	case ModeStandard:
		return 9
	case ModeCrazy:
		if d == DifficultyExpert {
			return 9
		}
		return 6
	}
	return 0
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
