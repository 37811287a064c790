package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// modifiedLayout renders timestamps like "Mon  3 Jun 24".
const modifiedLayout = "Mon _2 Jan 06"

// namePlaceholder substitutes file names that are not valid text.
const namePlaceholder = "???"

// Collect produces one Entry per direct child of the directory at path,
// in the order the filesystem enumeration yields them, together with the
// aggregate byte count across the listing.
//
// Metadata for direct children is read following symlinks, so a symlink
// to a directory lists as a Directory. Directory sizes use the
// empty-directory fast path before falling back to a full recursive
// walk. Failures degrade per entry: a child whose metadata cannot be
// read is omitted, an unreadable subdirectory sizes as "0B", and a name
// that is not valid text is replaced with a placeholder. Only a failure
// to enumerate path itself returns an error.
func Collect(path string) ([]Entry, ByteCount, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading directory %q: %w", path, err)
	}

	entries := make([]Entry, 0, len(children))

	var total ByteCount

	for _, child := range children {
		childPath := filepath.Join(path, child.Name())

		info, err := os.Stat(childPath)
		if err != nil {
			log.Debug("omitting entry", "path", childPath, "err", err)

			continue
		}

		var size ByteCount

		kind := File
		if info.IsDir() {
			kind = Directory
			size = dirSizeWithFastPath(childPath)
		} else {
			size = ByteCount(info.Size()) //nolint:gosec // Sizes are never negative
		}

		total += size

		name := child.Name()
		if !utf8.ValidString(name) {
			name = namePlaceholder
		}

		modified := ""
		if !info.ModTime().IsZero() {
			modified = info.ModTime().Format(modifiedLayout)
		}

		entries = append(entries, Entry{
			Name:     name,
			Kind:     kind,
			Size:     FormatBinaryUnits(size),
			Modified: modified,
		})
	}

	return entries, total, nil
}

// dirSizeWithFastPath sizes a subdirectory, skipping the recursive walk
// when the directory is empty. An unreadable directory counts as zero
// so one bad branch never fails the whole listing.
func dirSizeWithFastPath(path string) ByteCount {
	empty, err := IsDirEmpty(path)
	if err != nil {
		log.Debug("sizing unreadable directory as zero", "path", path, "err", err)

		return 0
	}

	if empty {
		return 0
	}

	return DirSize(path)
}
