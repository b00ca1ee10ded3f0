package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/progress"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

func complete(t *testing.T, st progress.Store, mode puzzle.Mode, diff puzzle.Difficulty, level, secs, mistakes int) {
	t.Helper()
	if err := progress.RecordCompletion(context.Background(), st, mode, diff, level, secs, mistakes); err != nil {
		t.Fatal(err)
	}
}

func TestCategoryStatsEmpty(t *testing.T) {
	a := New(progress.NewMemoryStore())
	got, err := a.CategoryStats(context.Background(), puzzle.ModeMini, puzzle.DifficultyEasy)
	if err != nil {
		t.Fatal(err)
	}
	if got.LevelsCompleted != 0 || got.AvgTimeSeconds != 0 || got.BestTimeSeconds != 0 ||
		got.AvgMistakes != 0 || got.CompletionPct != 0 {
		t.Errorf("empty category stats = %+v", got)
	}
	if !got.IsUnlocked {
		t.Error("easy tier should always be unlocked")
	}
	if len(got.Levels) != DefaultLevelCount {
		t.Errorf("detail rows = %d, want %d", len(got.Levels), DefaultLevelCount)
	}
}

func TestCategoryStatsScenario(t *testing.T) {
	// expert has 3 of 50 completed with times [100, 0, 50] and
	// mistakes [2, 1, 0]
	st := progress.NewMemoryStore()
	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyExpert, 1, 100, 2)
	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyExpert, 2, 0, 1)
	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyExpert, 3, 50, 0)

	a := New(st)
	got, err := a.CategoryStats(context.Background(), puzzle.ModeStandard, puzzle.DifficultyExpert)
	if err != nil {
		t.Fatal(err)
	}
	if got.LevelsCompleted != 3 {
		t.Errorf("levelsCompleted = %d, want 3", got.LevelsCompleted)
	}
	if got.AvgTimeSeconds != 50 {
		t.Errorf("avgTimeSeconds = %d, want 50", got.AvgTimeSeconds)
	}
	// the zero-time completed level does not count toward best
	if got.BestTimeSeconds != 50 {
		t.Errorf("bestTimeSeconds = %d, want 50", got.BestTimeSeconds)
	}
	if got.AvgMistakes != 1.0 {
		t.Errorf("avgMistakes = %v, want 1.0", got.AvgMistakes)
	}
	if got.CompletionPct != 6.0 {
		t.Errorf("completionPct = %v, want 6.0", got.CompletionPct)
	}
}

func TestAvgTimeTruncates(t *testing.T) {
	st := progress.NewMemoryStore()
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyMedium, 1, 10, 0)
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyMedium, 2, 11, 0)

	a := New(st)
	got, err := a.CategoryStats(context.Background(), puzzle.ModeMini, puzzle.DifficultyMedium)
	if err != nil {
		t.Fatal(err)
	}
	if got.AvgTimeSeconds != 10 { // (10+11)/2 truncated
		t.Errorf("avgTimeSeconds = %d, want 10", got.AvgTimeSeconds)
	}
}

func TestMasterUnlockGate(t *testing.T) {
	st := progress.NewMemoryStore()
	a := New(st)
	ctx := context.Background()

	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyExpert, 1, 60, 0)
	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyExpert, 2, 60, 0)

	got, err := a.CategoryStats(ctx, puzzle.ModeStandard, puzzle.DifficultyMaster)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsUnlocked {
		t.Error("master unlocked with 2 expert completions")
	}

	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyExpert, 3, 60, 0)
	got, err = a.CategoryStats(ctx, puzzle.ModeStandard, puzzle.DifficultyMaster)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsUnlocked {
		t.Error("master locked with exactly 3 expert completions")
	}

	// another mode's expert completions do not leak into this gate
	got, err = a.CategoryStats(ctx, puzzle.ModeMini, puzzle.DifficultyMaster)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsUnlocked {
		t.Error("mini master unlocked by standard expert completions")
	}
}

func TestCrazyTopTierGate(t *testing.T) {
	st := progress.NewMemoryStore()
	a := New(st)
	ctx := context.Background()

	got, _ := a.CategoryStats(ctx, puzzle.ModeCrazy, puzzle.DifficultyExpert)
	if got.IsUnlocked {
		t.Error("crazy expert unlocked with no hard completions")
	}
	for n := 1; n <= 3; n++ {
		complete(t, st, puzzle.ModeCrazy, puzzle.DifficultyHard, n, 30, 0)
	}
	got, _ = a.CategoryStats(ctx, puzzle.ModeCrazy, puzzle.DifficultyExpert)
	if !got.IsUnlocked {
		t.Error("crazy expert locked with 3 hard completions")
	}
}

func TestTotalCompleted(t *testing.T) {
	st := progress.NewMemoryStore()
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyEasy, 1, 10, 0)
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyHard, 2, 20, 1)
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyMaster, 3, 30, 2)
	complete(t, st, puzzle.ModeStandard, puzzle.DifficultyEasy, 1, 10, 0) // other mode

	a := New(st)
	n, err := a.TotalCompleted(context.Background(), puzzle.ModeMini)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("TotalCompleted(mini) = %d, want 3", n)
	}
}

func TestClearAllResetsBaseline(t *testing.T) {
	st := progress.NewMemoryStore()
	ctx := context.Background()
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyEasy, 1, 10, 1)
	complete(t, st, puzzle.ModeCrazy, puzzle.DifficultyMedium, 2, 20, 2)
	_ = progress.SaveSession(ctx, st, puzzle.ModeMini, puzzle.DifficultyEasy, progress.Session{Level: 1})
	_ = st.Set(ctx, "settings_sound_enabled", "true") // not progress, must survive

	a := New(st)
	if err := a.ClearAll(ctx); err != nil {
		t.Fatal(err)
	}

	for _, mode := range []puzzle.Mode{puzzle.ModeMini, puzzle.ModeStandard, puzzle.ModeCrazy} {
		for _, diff := range mode.Ladder() {
			got, err := a.CategoryStats(ctx, mode, diff)
			if err != nil {
				t.Fatal(err)
			}
			if got.LevelsCompleted != 0 || got.AvgTimeSeconds != 0 ||
				got.BestTimeSeconds != 0 || got.AvgMistakes != 0 {
				t.Errorf("%s/%s not at baseline after clear: %+v", mode, diff, got)
			}
		}
	}
	if _, ok, _ := progress.LoadSession(ctx, st, puzzle.ModeMini, puzzle.DifficultyEasy); ok {
		t.Error("session survived ClearAll")
	}
	if _, ok, _ := st.Get(ctx, "settings_sound_enabled"); !ok {
		t.Error("non-progress key was cleared")
	}
}

func TestAggregationHonorsCancellation(t *testing.T) {
	a := New(progress.NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.CategoryStats(ctx, puzzle.ModeMini, puzzle.DifficultyEasy); !errors.Is(err, context.Canceled) {
		t.Errorf("error %v, want context.Canceled", err)
	}
}

func TestCustomLevelCount(t *testing.T) {
	st := progress.NewMemoryStore()
	complete(t, st, puzzle.ModeMini, puzzle.DifficultyEasy, 1, 10, 0)
	a := New(st)
	a.LevelCount = 5
	got, err := a.CategoryStats(context.Background(), puzzle.ModeMini, puzzle.DifficultyEasy)
	if err != nil {
		t.Fatal(err)
	}
	if got.LevelCount != 5 || got.CompletionPct != 20.0 {
		t.Errorf("count/pct = %d/%v, want 5/20", got.LevelCount, got.CompletionPct)
	}
}
