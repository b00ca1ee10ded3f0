package assets

import "embed"

// Levels carries the default authored level packs shipped with the
// server. A LEVELS_DIR override can shadow them with files on disk.
//
//go:embed levels/*.json
var Levels embed.FS
