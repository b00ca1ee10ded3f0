// apps/go-server/internal/level/source.go
//
// Level pack byte retrieval. Mirrors the asset strategy used for the
// word lists in the Wordle server: a directory override from the
// environment when present, embedded defaults otherwise, so the server
// always has something to serve.

package level

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/robalobadob/trisudoku/apps/go-server/assets"
)

// Source retrieves raw level pack documents by filename
// (e.g. "mini_easy.json"). Implementations must report missing files
// with an error wrapping fs.ErrNotExist.
type Source interface {
	ReadFile(name string) ([]byte, error)
}

// embeddedSource serves the packs compiled into the binary.
type embeddedSource struct{}

func (embeddedSource) ReadFile(name string) ([]byte, error) {
	return assets.Levels.ReadFile("levels/" + name)
}

// dirSource serves packs from a directory on disk.
type dirSource struct{ dir string }

func (s dirSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}

// NewSource returns a Source for dir, or the embedded packs when dir is
// empty.
func NewSource(dir string) Source {
	if dir == "" {
		return embeddedSource{}
	}
	return dirSource{dir: dir}
}

// notFound reports whether a source read failed because the file does
// not exist (as opposed to being unreadable).
func notFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
