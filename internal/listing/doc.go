// Package listing collects directory entry metadata.
//
// It enumerates the direct children of a directory, computes recursive
// sizes for subdirectories without following symlinks, and renders byte
// counts and timestamps as display strings ready for a table or JSON sink.
package listing
