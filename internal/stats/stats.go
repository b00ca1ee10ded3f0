// apps/go-server/internal/stats/stats.go
//
// Progress aggregation over the key-value progress store.
// Responsibilities:
//   - Per-category summaries: completion count/%, average and best
//     times, average mistakes, per-level detail rows.
//   - Tier unlock decisions: the last rung of a mode's ladder opens
//     only after enough completions on the rung before it.
//   - Mode totals and the bulk progress clear.
//
// Aggregates are pure derived values, never persisted. Reads happen in
// increasing level order; the reductions are commutative (sum, min), so
// order does not affect the result. Cancellation is honored between
// per-level reads and partial aggregates are simply discarded.

package stats

import (
	"context"
	"strconv"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/progress"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

// DefaultLevelCount is the authored pack size per category.
const DefaultLevelCount = 50

// unlockThreshold is the completed-level count required on the
// preceding tier before the top tier opens. A product constant, not a
// per-call knob.
const unlockThreshold = 3

// LevelDetail is one level's raw record, zero-valued when never played.
type LevelDetail struct {
	Level       int  `json:"level"`
	Completed   bool `json:"completed"`
	TimeSeconds int  `json:"timeSeconds"`
	Mistakes    int  `json:"mistakes"`
}

// CategoryStats summarizes one (mode, difficulty) category.
type CategoryStats struct {
	Mode            puzzle.Mode       `json:"mode"`
	Difficulty      puzzle.Difficulty `json:"difficulty"`
	LevelCount      int               `json:"levelCount"`
	LevelsCompleted int               `json:"levelsCompleted"`
	CompletionPct   float64           `json:"completionPct"`
	AvgTimeSeconds  int               `json:"avgTimeSeconds"`
	BestTimeSeconds int               `json:"bestTimeSeconds"`
	AvgMistakes     float64           `json:"avgMistakes"`
	IsUnlocked      bool              `json:"isUnlocked"`
	Levels          []LevelDetail     `json:"levels"`
}

// Aggregator computes summaries from a progress store.
type Aggregator struct {
	store progress.Store

	// LevelCount is the number of levels per category; defaults to
	// DefaultLevelCount when zero.
	LevelCount int
}

// New constructs an Aggregator over st.
func New(st progress.Store) *Aggregator {
	return &Aggregator{store: st, LevelCount: DefaultLevelCount}
}

func (a *Aggregator) levelCount() int {
	if a.LevelCount > 0 {
		return a.LevelCount
	}
	return DefaultLevelCount
}

// CategoryStats reads levels 1..LevelCount for one category and reduces
// them to a summary. Averages run over completed levels only; a
// completed level with no recorded positive time is excluded from the
// best-time minimum but still counts toward the time average.
func (a *Aggregator) CategoryStats(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty) (CategoryStats, error) {
	count := a.levelCount()
	out := CategoryStats{Mode: mode, Difficulty: diff, LevelCount: count}

	totalTime, totalMistakes := 0, 0
	for n := 1; n <= count; n++ {
		if err := ctx.Err(); err != nil {
			return CategoryStats{}, err
		}
		d, err := a.levelDetail(ctx, mode, diff, n)
		if err != nil {
			return CategoryStats{}, err
		}
		out.Levels = append(out.Levels, d)
		if !d.Completed {
			continue
		}
		out.LevelsCompleted++
		totalTime += d.TimeSeconds
		totalMistakes += d.Mistakes
		if d.TimeSeconds > 0 && (out.BestTimeSeconds == 0 || d.TimeSeconds < out.BestTimeSeconds) {
			out.BestTimeSeconds = d.TimeSeconds
		}
	}
	if out.LevelsCompleted > 0 {
		out.AvgTimeSeconds = totalTime / out.LevelsCompleted
		out.AvgMistakes = float64(totalMistakes) / float64(out.LevelsCompleted)
	}
	out.CompletionPct = float64(out.LevelsCompleted) / float64(count) * 100

	unlocked, err := a.unlocked(ctx, mode, diff)
	if err != nil {
		return CategoryStats{}, err
	}
	out.IsUnlocked = unlocked
	return out, nil
}

// unlocked gates the last rung of a mode's ladder on completions at the
// rung before it; every other rung is always open.
func (a *Aggregator) unlocked(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty) (bool, error) {
	ladder := mode.Ladder()
	if len(ladder) < 2 || diff != ladder[len(ladder)-1] {
		return true, nil
	}
	prev := ladder[len(ladder)-2]
	n, err := a.completedCount(ctx, mode, prev)
	if err != nil {
		return false, err
	}
	return n >= unlockThreshold, nil
}

// TotalCompleted sums completed-level counts across a mode's ladder.
func (a *Aggregator) TotalCompleted(ctx context.Context, mode puzzle.Mode) (int, error) {
	total := 0
	for _, diff := range mode.Ladder() {
		n, err := a.completedCount(ctx, mode, diff)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// ClearAll removes every level record and in-progress session from the
// store. Destructive and irreversible. The store contract keeps the key
// space enumerable on partial failure, so a failed clear can be rerun.
func (a *Aggregator) ClearAll(ctx context.Context) error {
	keys, err := a.store.Keys(ctx)
	if err != nil {
		return err
	}
	doomed := keys[:0]
	for _, k := range keys {
		if progress.Clearable(k) {
			doomed = append(doomed, k)
		}
	}
	return a.store.Delete(ctx, doomed...)
}

func (a *Aggregator) completedCount(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty) (int, error) {
	count := 0
	for n := 1; n <= a.levelCount(); n++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		v, ok, err := a.store.Get(ctx, progress.LevelKey(mode, diff, n))
		if err != nil {
			return 0, err
		}
		if ok && v == progress.CompletedValue {
			count++
		}
	}
	return count, nil
}

func (a *Aggregator) levelDetail(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty, n int) (LevelDetail, error) {
	d := LevelDetail{Level: n}
	v, ok, err := a.store.Get(ctx, progress.LevelKey(mode, diff, n))
	if err != nil {
		return d, err
	}
	d.Completed = ok && v == progress.CompletedValue
	if d.TimeSeconds, err = a.intValue(ctx, progress.TimeKey(mode, diff, n)); err != nil {
		return d, err
	}
	if d.Mistakes, err = a.intValue(ctx, progress.MistakesKey(mode, diff, n)); err != nil {
		return d, err
	}
	return d, nil
}

// intValue reads an integer record, defaulting to 0 when the key is
// absent or holds something unparseable. Absence is the normal state
// for never-played levels, not an error.
func (a *Aggregator) intValue(ctx context.Context, key string) (int, error) {
	v, ok, err := a.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}
