// apps/go-server/internal/level/parse.go
//
// Pack document decoding. Strict: every schema violation or model
// invariant failure becomes a MalformedAssetError naming the pack and
// the offending level, never a partial result.

package level

import (
	"encoding/json"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

// Single-layer pack document:
// {"gridSize":N,"levels":[{"id","puzzle","solution","clues"}]}
type singleDoc struct {
	GridSize int           `json:"gridSize"`
	Levels   []singleLevel `json:"levels"`
}

type singleLevel struct {
	ID       int    `json:"id"`
	Puzzle   string `json:"puzzle"`
	Solution string `json:"solution"`
	Clues    int    `json:"clues"`
}

// Combined pack document: an array of
// {"size":N,"layers":[{"initial":[[..]],"solution":[[..]]}],"clue_count":n}
// with layers ordered shape, color, (number).
type combinedRecord struct {
	Size      int             `json:"size"`
	Layers    []combinedLayer `json:"layers"`
	ClueCount int             `json:"clue_count"`
}

type combinedLayer struct {
	Initial  [][]int `json:"initial"`
	Solution [][]int `json:"solution"`
}

func parseSinglePack(path string, data []byte, mode puzzle.Mode, diff puzzle.Difficulty) ([]*puzzle.Puzzle, error) {
	var doc singleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedAssetError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if len(doc.Levels) == 0 {
		return nil, &MalformedAssetError{Path: path, Reason: "no levels"}
	}
	size := puzzle.GridSize(mode, diff)
	if doc.GridSize != size {
		return nil, &MalformedAssetError{Path: path,
			Reason: "gridSize does not match mode"}
	}
	out := make([]*puzzle.Puzzle, 0, len(doc.Levels))
	for i, rec := range doc.Levels {
		n := i + 1
		ini, err := puzzle.GridFromString(size, rec.Puzzle)
		if err != nil {
			return nil, &MalformedAssetError{Path: path, Level: n, Reason: "bad puzzle string", Err: err}
		}
		sol, err := puzzle.GridFromString(size, rec.Solution)
		if err != nil {
			return nil, &MalformedAssetError{Path: path, Level: n, Reason: "bad solution string", Err: err}
		}
		p, err := puzzle.NewPuzzle(mode, diff, n, ini, sol, rec.Clues)
		if err != nil {
			return nil, &MalformedAssetError{Path: path, Level: n, Reason: err.Error(), Err: err}
		}
		out = append(out, p)
	}
	return out, nil
}

func parseCombinedPack(path string, data []byte, tier puzzle.Difficulty) ([]*puzzle.CombinedPuzzle, error) {
	var recs []combinedRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, &MalformedAssetError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if len(recs) == 0 {
		return nil, &MalformedAssetError{Path: path, Reason: "no levels"}
	}
	size := puzzle.GridSize(puzzle.ModeCrazy, tier)
	// the number layer is present from the hard tier up
	wantSet := puzzle.LayersShapeColorNumber
	if tier == puzzle.DifficultyMedium {
		wantSet = puzzle.LayersShapeColor
	}
	out := make([]*puzzle.CombinedPuzzle, 0, len(recs))
	for i, rec := range recs {
		n := i + 1
		if rec.Size != size {
			return nil, &MalformedAssetError{Path: path, Level: n, Reason: "size does not match tier"}
		}
		set, ok := puzzle.LayerSetFor(len(rec.Layers))
		if !ok || set != wantSet {
			return nil, &MalformedAssetError{Path: path, Level: n, Reason: "missing or extra layer"}
		}
		var ini, sol []puzzle.Grid
		for li, layer := range rec.Layers {
			ig, err := puzzle.GridFromRows(size, layer.Initial)
			if err != nil {
				return nil, &MalformedAssetError{Path: path, Level: n,
					Reason: "bad initial grid in layer " + set.Layers()[li].String(), Err: err}
			}
			sg, err := puzzle.GridFromRows(size, layer.Solution)
			if err != nil {
				return nil, &MalformedAssetError{Path: path, Level: n,
					Reason: "bad solution grid in layer " + set.Layers()[li].String(), Err: err}
			}
			ini = append(ini, ig)
			sol = append(sol, sg)
		}
		p, err := puzzle.NewCombinedPuzzle(tier, n, set, ini, sol, rec.ClueCount, puzzle.LayerShape)
		if err != nil {
			return nil, &MalformedAssetError{Path: path, Level: n, Reason: err.Error(), Err: err}
		}
		out = append(out, p)
	}
	return out, nil
}
