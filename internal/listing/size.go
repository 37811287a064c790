package listing

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DirSize returns the total size in bytes of all files reachable under
// path. Traversal is sequential and depth-first. Metadata is read
// without following symlinks, so link targets are never dereferenced:
// a symlink contributes the length of its own link record, and a
// symlink to a directory (even an ancestor) is not recursed into.
// Unreadable entries and branches contribute zero rather than aborting
// the traversal.
func DirSize(path string) ByteCount {
	var total ByteCount

	entries, err := os.ReadDir(path)
	if err != nil {
		log.Debug("skipping unreadable directory", "path", path, "err", err)

		return 0
	}

	for _, entry := range entries {
		// DirEntry.Info has lstat semantics: it reports the link
		// itself, never the target.
		info, err := entry.Info()
		if err != nil {
			log.Debug("skipping entry", "path", filepath.Join(path, entry.Name()), "err", err)

			continue
		}

		if entry.IsDir() {
			total += DirSize(filepath.Join(path, entry.Name()))
		} else {
			total += ByteCount(info.Size()) //nolint:gosec // Sizes are never negative
		}
	}

	return total
}

// IsDirEmpty reports whether the directory at path contains zero
// entries of any kind. Read failures propagate to the caller.
func IsDirEmpty(path string) (bool, error) {
	dir, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer dir.Close()

	if _, err := dir.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}

		return false, err
	}

	return false, nil
}
