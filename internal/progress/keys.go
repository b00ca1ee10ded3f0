// apps/go-server/internal/progress/keys.go
//
// The persisted key schema. The exact strings are shared with prior
// releases of the app: any change here silently orphans every player's
// progress, so the format is kept bit-for-bit.
//
//   "{difficulty}_{mode}_level_{n}"            -> "completed"
//   "{difficulty}_{mode}_level_{n}_time"       -> seconds (int)
//   "{difficulty}_{mode}_level_{n}_mistakes"   -> count (int)
//   "current_game_{mode}_{difficulty}"         -> session JSON

package progress

import (
	"fmt"
	"strings"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

// CompletedValue marks a finished level.
const CompletedValue = "completed"

// LevelKey is the completion-marker key for one level.
func LevelKey(mode puzzle.Mode, diff puzzle.Difficulty, level int) string {
	return fmt.Sprintf("%s_%s_level_%d", diff, mode, level)
}

// TimeKey holds the elapsed seconds for a completed level.
func TimeKey(mode puzzle.Mode, diff puzzle.Difficulty, level int) string {
	return LevelKey(mode, diff, level) + "_time"
}

// MistakesKey holds the mistake count for a completed level.
func MistakesKey(mode puzzle.Mode, diff puzzle.Difficulty, level int) string {
	return LevelKey(mode, diff, level) + "_mistakes"
}

// SessionKey holds the serialized in-progress game for a category.
func SessionKey(mode puzzle.Mode, diff puzzle.Difficulty) string {
	return fmt.Sprintf("current_game_%s_%s", mode, diff)
}

// Clearable reports whether a key belongs to player progress and is
// subject to bulk clear: level records and in-progress sessions.
func Clearable(key string) bool {
	return strings.Contains(key, "_level_") || strings.Contains(key, "current_game_")
}
