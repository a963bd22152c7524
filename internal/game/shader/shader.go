// Package shader holds the Kage source of the GPU pattern path.
package shader

import (
	_ "embed"
	"os"
)

// SourcePath is where Reload looks for an edited copy of the shader,
// relative to the working directory.
const SourcePath = "internal/game/shader/kaleidoscope.go"

//go:embed kaleidoscope.go
var source []byte

// Source returns the embedded shader.
func Source() []byte {
	return source
}

// Load returns the on-disk copy when present, else the embedded one.
func Load() ([]byte, bool) {
	if data, err := os.ReadFile(SourcePath); err == nil {
		return data, true
	}
	return source, false
}
