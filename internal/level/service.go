// apps/go-server/internal/level/service.go
//
// Level pack parsing and caching.
// Responsibilities:
//   - Resolve (mode, difficulty) selectors to pack filenames.
//   - Decode and invariant-check pack documents into puzzle values.
//   - Memoize parsed packs by filename: repeat requests for the same
//     pack never re-read or re-validate the source.
//   - Indexing policy: single-layer packs reject levels outside
//     [1,count]; combined packs wrap the requested index modulo the
//     authored count so play can continue past the end of the set.
//
// The cache is injected per Service instance; there is no package-wide
// singleton, so tests get isolation for free.

package level

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/puzzle"
)

// Service loads, validates, and caches level packs from a Source.
type Service struct {
	src Source

	mu       sync.Mutex
	single   map[string][]*puzzle.Puzzle
	combined map[string][]*puzzle.CombinedPuzzle
}

// NewService constructs a Service over src.
func NewService(src Source) *Service {
	return &Service{
		src:      src,
		single:   make(map[string][]*puzzle.Puzzle),
		combined: make(map[string][]*puzzle.CombinedPuzzle),
	}
}

// ClearCache drops every memoized pack. Teardown/testing only; packs
// are otherwise cached for the process lifetime.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.single = make(map[string][]*puzzle.Puzzle)
	s.combined = make(map[string][]*puzzle.CombinedPuzzle)
}

// singlePath resolves the fixed per-difficulty pack filename.
func singlePath(mode puzzle.Mode, diff puzzle.Difficulty) (string, error) {
	if mode != puzzle.ModeMini && mode != puzzle.ModeStandard {
		return "", fmt.Errorf("mode %q is not a single-layer mode", mode)
	}
	ok := false
	for _, d := range mode.Ladder() {
		if d == diff {
			ok = true
		}
	}
	if !ok {
		return "", fmt.Errorf("difficulty %q not on the %s ladder", diff, mode)
	}
	return fmt.Sprintf("%s_%s.json", mode, diff), nil
}

// combinedPath resolves the per-tier combined pack filename.
func combinedPath(tier puzzle.Difficulty) (string, error) {
	for _, d := range puzzle.ModeCrazy.Ladder() {
		if d == tier {
			return fmt.Sprintf("crazy_%s.json", tier), nil
		}
	}
	return "", fmt.Errorf("tier %q not on the crazy ladder", tier)
}

// LoadPuzzle returns the validated single-layer puzzle at level
// (1-based) for the given mode and difficulty.
func (s *Service) LoadPuzzle(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty, level int) (*puzzle.Puzzle, error) {
	pack, err := s.singlePack(ctx, mode, diff)
	if err != nil {
		return nil, err
	}
	if level < 1 || level > len(pack) {
		return nil, &IndexError{Requested: level, Count: len(pack)}
	}
	return pack[level-1], nil
}

// SingleCount reports the authored level count for a single-layer pack.
func (s *Service) SingleCount(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty) (int, error) {
	pack, err := s.singlePack(ctx, mode, diff)
	if err != nil {
		return 0, err
	}
	return len(pack), nil
}

// LoadCombined returns the validated combined puzzle for the given
// crazy tier. The index (0-based) wraps modulo the authored count:
// requesting index 7 of a 5-level pack plays index 2. Callers wanting
// "exhausted" semantics track the count themselves via CombinedCount.
func (s *Service) LoadCombined(ctx context.Context, tier puzzle.Difficulty, index int) (*puzzle.CombinedPuzzle, error) {
	pack, err := s.combinedPack(ctx, tier)
	if err != nil {
		return nil, err
	}
	idx := index % len(pack)
	if idx < 0 {
		idx += len(pack)
	}
	return pack[idx], nil
}

// CombinedCount reports the authored level count for a combined tier.
func (s *Service) CombinedCount(ctx context.Context, tier puzzle.Difficulty) (int, error) {
	pack, err := s.combinedPack(ctx, tier)
	if err != nil {
		return 0, err
	}
	return len(pack), nil
}

func (s *Service) singlePack(ctx context.Context, mode puzzle.Mode, diff puzzle.Difficulty) ([]*puzzle.Puzzle, error) {
	path, err := singlePath(mode, diff)
	if err != nil {
		return nil, &AssetNotFoundError{Path: string(mode) + "_" + string(diff), Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if pack, ok := s.single[path]; ok {
		return pack, nil
	}
	data, err := s.read(ctx, path)
	if err != nil {
		return nil, err
	}
	pack, err := parseSinglePack(path, data, mode, diff)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("asset", path).Int("levels", len(pack)).Msg("parsed level pack")
	s.single[path] = pack
	return pack, nil
}

func (s *Service) combinedPack(ctx context.Context, tier puzzle.Difficulty) ([]*puzzle.CombinedPuzzle, error) {
	path, err := combinedPath(tier)
	if err != nil {
		return nil, &AssetNotFoundError{Path: "crazy_" + string(tier), Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if pack, ok := s.combined[path]; ok {
		return pack, nil
	}
	data, err := s.read(ctx, path)
	if err != nil {
		return nil, err
	}
	pack, err := parseCombinedPack(path, data, tier)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("asset", path).Int("levels", len(pack)).Msg("parsed combined pack")
	s.combined[path] = pack
	return pack, nil
}

// read is the single suspension point for asset bytes.
func (s *Service) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.src.ReadFile(path)
	if err != nil {
		if notFound(err) {
			return nil, &AssetNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
