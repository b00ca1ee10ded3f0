// apps/go-server/internal/level/errors.go
//
// Error taxonomy for level loading. Parse and validation failures are
// never swallowed: the caller gets a typed error it can distinguish,
// since serving an invalid puzzle would corrupt gameplay.

package level

import "fmt"

// AssetNotFoundError: the level pack path or filename does not resolve.
type AssetNotFoundError struct {
	Path string
	Err  error
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("level asset %q not found: %v", e.Path, e.Err)
}

func (e *AssetNotFoundError) Unwrap() error { return e.Err }

// MalformedAssetError: the pack decoded but violated the schema or a
// model invariant (wrong length, non-digit, missing layer, shared-clue
// violation, holed solution, clue contradicting the solution).
type MalformedAssetError struct {
	Path   string
	Level  int // 1-based level id within the pack, 0 if the whole document
	Reason string
	Err    error
}

func (e *MalformedAssetError) Error() string {
	if e.Level > 0 {
		return fmt.Sprintf("malformed level asset %q, level %d: %s", e.Path, e.Level, e.Reason)
	}
	return fmt.Sprintf("malformed level asset %q: %s", e.Path, e.Reason)
}

func (e *MalformedAssetError) Unwrap() error { return e.Err }

// IndexError: a single-layer level request outside [1, count]. Only the
// single-layer path errors here; combined requests wrap modulo the count.
type IndexError struct {
	Requested int
	Count     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("level %d outside [1,%d]", e.Requested, e.Count)
}
