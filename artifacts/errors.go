// Package artifacts reads and writes the two files shared between the
// offline batches and the API server: the processed metrics snapshot and the
// per-state forecast bundle. Writers publish atomically; readers classify
// failures so callers can tell "pipeline has not run" from "pipeline
// produced garbage".
package artifacts

import "errors"

var (
	// ErrNotFound means the artifact file does not exist yet.
	ErrNotFound = errors.New("artifact not found")
	// ErrCorrupt means the file exists but is not JSON of any known shape.
	ErrCorrupt = errors.New("artifact corrupt")
	// ErrSchema means the JSON parsed but the payload breaks the contract.
	ErrSchema = errors.New("artifact schema invalid")
)
