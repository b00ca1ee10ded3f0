// apps/go-server/internal/httpserver/handlers.go
//
// Route handlers. The engine's typed errors map to distinct statuses:
//   AssetNotFoundError  -> 404 (no such pack)
//   MalformedAssetError -> 422 (pack shipped corrupt)
//   IndexError          -> 400 (level outside the authored range)
//   StoreError          -> 500 (persistence failure)
// Store-read absence is never an error; never-played levels read as
// zero records.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/level"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/progress"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

// parseCategory validates a (mode, difficulty) pair from the URL.
func parseCategory(r *http.Request) (puzzle.Mode, puzzle.Difficulty, bool) {
	mode := puzzle.Mode(chi.URLParam(r, "mode"))
	diff := puzzle.Difficulty(chi.URLParam(r, "difficulty"))
	for _, d := range mode.Ladder() {
		if d == diff {
			return mode, diff, true
		}
	}
	return mode, diff, false
}

func urlInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// writeEngineErr maps an engine error onto a JSON response.
func writeEngineErr(w http.ResponseWriter, err error) {
	var nf *level.AssetNotFoundError
	var mal *level.MalformedAssetError
	var idx *level.IndexError
	var st *progress.StoreError
	switch {
	case errors.As(err, &nf):
		http.Error(w, `{"error":"asset_not_found"}`, http.StatusNotFound)
	case errors.As(err, &mal):
		log.Error().Err(err).Msg("malformed level asset")
		http.Error(w, `{"error":"malformed_asset"}`, http.StatusUnprocessableEntity)
	case errors.As(err, &idx):
		http.Error(w, `{"error":"level_out_of_range"}`, http.StatusBadRequest)
	case errors.As(err, &st):
		log.Error().Err(err).Msg("progress store failure")
		http.Error(w, `{"error":"store_failed"}`, http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("internal error")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}

// ------------------------------ LEVELS -------------------------------------

// puzzleRes ships the clue board only; the solution stays server-side
// and is consulted through /check.
type puzzleRes struct {
	Mode       puzzle.Mode       `json:"mode"`
	Difficulty puzzle.Difficulty `json:"difficulty"`
	Level      int               `json:"level"`
	Size       int               `json:"size"`
	Clues      int               `json:"clues"`
	Initial    puzzle.Grid       `json:"initial"`
	Fixed      [][]bool          `json:"fixed"`
}

func (s *Server) handleLoadPuzzle(w http.ResponseWriter, r *http.Request) {
	mode, diff, ok := parseCategory(r)
	if !ok || mode == puzzle.ModeCrazy {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	lvl, err := urlInt(r, "level")
	if err != nil {
		http.Error(w, `{"error":"bad_level"}`, http.StatusBadRequest)
		return
	}
	p, err := s.levels.LoadPuzzle(r.Context(), mode, diff, lvl)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(puzzleRes{
		Mode:       p.Mode,
		Difficulty: p.Difficulty,
		Level:      p.Level,
		Size:       p.Size,
		Clues:      p.Clues,
		Initial:    p.Initial(),
		Fixed:      p.Fixed(),
	})
}

type combinedRes struct {
	Difficulty    puzzle.Difficulty `json:"difficulty"`
	Level         int               `json:"level"`
	Size          int               `json:"size"`
	Clues         int               `json:"clues"`
	Layers        []string          `json:"layers"`
	SelectedLayer string            `json:"selectedLayer"`
	Initial       []puzzle.Grid     `json:"initial"`
}

func (s *Server) handleLoadCombined(w http.ResponseWriter, r *http.Request) {
	tier := puzzle.Difficulty(chi.URLParam(r, "tier"))
	idx, err := urlInt(r, "level")
	if err != nil {
		http.Error(w, `{"error":"bad_level"}`, http.StatusBadRequest)
		return
	}
	p, err := s.levels.LoadCombined(r.Context(), tier, idx)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	names := make([]string, 0, p.Set.Count())
	for _, l := range p.Set.Layers() {
		names = append(names, l.String())
	}
	_ = json.NewEncoder(w).Encode(combinedRes{
		Difficulty:    p.Difficulty,
		Level:         p.Level,
		Size:          p.Size,
		Clues:         p.Clues,
		Layers:        names,
		SelectedLayer: p.SelectedLayer().String(),
		Initial:       p.Initial(),
	})
}

// checkReq/Res payloads for POST /check.
type checkReq struct {
	Board [][]int `json:"board"`
}
type checkRes struct {
	Solved    bool               `json:"solved"`
	Valid     bool               `json:"valid"`
	Conflicts []puzzle.CellCoord `json:"conflicts"`
}

// handleCheck evaluates a working board against the authored puzzle:
// "valid" is the pure row/col/box uniqueness property, "solved" the
// exact match against the shipped solution.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	mode, diff, ok := parseCategory(r)
	if !ok || mode == puzzle.ModeCrazy {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	lvl, err := urlInt(r, "level")
	if err != nil {
		http.Error(w, `{"error":"bad_level"}`, http.StatusBadRequest)
		return
	}
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	p, err := s.levels.LoadPuzzle(r.Context(), mode, diff, lvl)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	board, err := puzzle.GridFromRows(p.Size, req.Board)
	if err != nil {
		http.Error(w, `{"error":"bad_board"}`, http.StatusBadRequest)
		return
	}
	valid, conflicts := puzzle.CheckCompletion(board)
	_ = json.NewEncoder(w).Encode(checkRes{
		Solved:    p.Solved(board),
		Valid:     valid,
		Conflicts: conflicts,
	})
}

// ----------------------------- PROGRESS ------------------------------------

type completeReq struct {
	Mode        puzzle.Mode       `json:"mode"`
	Difficulty  puzzle.Difficulty `json:"difficulty"`
	Level       int               `json:"level"`
	TimeSeconds int               `json:"timeSeconds"`
	Mistakes    int               `json:"mistakes"`
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if !onLadder(req.Mode, req.Difficulty) || req.Level < 1 {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	if err := progress.RecordCompletion(r.Context(), s.store, req.Mode, req.Difficulty,
		req.Level, req.TimeSeconds, req.Mistakes); err != nil {
		writeEngineErr(w, err)
		return
	}
	// a finished level ends any saved session for the category
	if err := progress.ClearSession(r.Context(), s.store, req.Mode, req.Difficulty); err != nil {
		log.Warn().Err(err).Msg("clear session after completion")
	}
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func onLadder(mode puzzle.Mode, diff puzzle.Difficulty) bool {
	for _, d := range mode.Ladder() {
		if d == diff {
			return true
		}
	}
	return false
}

func (s *Server) handleCategoryStats(w http.ResponseWriter, r *http.Request) {
	mode, diff, ok := parseCategory(r)
	if !ok {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	cs, err := s.stats.CategoryStats(r.Context(), mode, diff)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(cs)
}

func (s *Server) handleTotalCompleted(w http.ResponseWriter, r *http.Request) {
	mode := puzzle.Mode(chi.URLParam(r, "mode"))
	if mode.Ladder() == nil {
		http.Error(w, `{"error":"unknown_mode"}`, http.StatusBadRequest)
		return
	}
	n, err := s.stats.TotalCompleted(r.Context(), mode)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"mode": mode, "totalCompleted": n})
}

func (s *Server) handleClearProgress(w http.ResponseWriter, r *http.Request) {
	if err := s.stats.ClearAll(r.Context()); err != nil {
		writeEngineErr(w, err)
		return
	}
	log.Info().Msg("cleared all progress")
	_, _ = w.Write([]byte(`{"ok":true}`))
}

// ----------------------------- SESSIONS ------------------------------------

func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	mode, diff, ok := parseCategory(r)
	if !ok {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	var sess progress.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if err := progress.SaveSession(r.Context(), s.store, mode, diff, sess); err != nil {
		writeEngineErr(w, err)
		return
	}
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func (s *Server) handleLoadSession(w http.ResponseWriter, r *http.Request) {
	mode, diff, ok := parseCategory(r)
	if !ok {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	sess, found, err := progress.LoadSession(r.Context(), s.store, mode, diff)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	if !found {
		http.Error(w, `{"error":"no_session"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(sess)
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	mode, diff, ok := parseCategory(r)
	if !ok {
		http.Error(w, `{"error":"unknown_category"}`, http.StatusBadRequest)
		return
	}
	if err := progress.ClearSession(r.Context(), s.store, mode, diff); err != nil {
		writeEngineErr(w, err)
		return
	}
	_, _ = w.Write([]byte(`{"ok":true}`))
}
