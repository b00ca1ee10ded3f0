// apps/go-server/internal/progress/session.go
//
// In-progress game snapshots. The gameplay layer owns the working
// board; this package only round-trips it through the store under a
// current_game_ key so an interrupted game can resume.

package progress

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

// Session is a saved working state for one category.
// Boards holds one working grid per active layer (one entry for the
// single-layer modes), in layer order.
type Session struct {
	Level          int       `json:"level"`
	Boards         [][][]int `json:"boards"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
	Mistakes       int       `json:"mistakes"`
}

// SaveSession stores the session snapshot for a category.
func SaveSession(ctx context.Context, s Store, mode puzzle.Mode, diff puzzle.Difficulty, sess Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return &StoreError{Op: "encode session", Err: err}
	}
	return s.Set(ctx, SessionKey(mode, diff), string(b))
}

// LoadSession returns the saved session for a category, or ok=false if
// none exists.
func LoadSession(ctx context.Context, s Store, mode puzzle.Mode, diff puzzle.Difficulty) (Session, bool, error) {
	raw, ok, err := s.Get(ctx, SessionKey(mode, diff))
	if err != nil || !ok {
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, false, &StoreError{Op: "decode session", Err: err}
	}
	return sess, true, nil
}

// ClearSession removes the saved session for a category.
func ClearSession(ctx context.Context, s Store, mode puzzle.Mode, diff puzzle.Difficulty) error {
	return s.Delete(ctx, SessionKey(mode, diff))
}

// RecordCompletion writes the three level records for a finished level.
func RecordCompletion(ctx context.Context, s Store, mode puzzle.Mode, diff puzzle.Difficulty, level, timeSeconds, mistakes int) error {
	if err := s.Set(ctx, LevelKey(mode, diff, level), CompletedValue); err != nil {
		return err
	}
	if err := s.Set(ctx, TimeKey(mode, diff, level), strconv.Itoa(timeSeconds)); err != nil {
		return err
	}
	return s.Set(ctx, MistakesKey(mode, diff, level), strconv.Itoa(mistakes))
}
