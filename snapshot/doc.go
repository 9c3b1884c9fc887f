// Package snapshot provides consistent, read-only views of the
// resting book state. Readers enter and exit read epochs so that
// retired orders are never recycled underneath a view in progress.
//
// The package is decoupled from matching; it only coordinates
// read visibility and the deterministic ordering of the view.
package snapshot
