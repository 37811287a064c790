package listing

import "encoding/json"

// ByteCount is a raw size in bytes.
type ByteCount = uint64

// Kind classifies a directory entry.
type Kind int

// Entry kinds. Anything that is not a directory is a File, including
// symlinks and other special files.
const (
	File Kind = iota
	Directory
)

// kindNames maps each kind to its display label.
//
//nolint:gochecknoglobals // Display mapping table
var kindNames = map[Kind]string{
	File:      "File",
	Directory: "Directory",
}

// String returns the display label for the kind.
func (k Kind) String() string {
	return kindNames[k]
}

// MarshalJSON serializes the kind as its display label.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Entry describes one direct child of a listed directory.
// Entries are immutable once collected.
type Entry struct {
	// Name is the entry's base name, or "???" if it is not valid text.
	Name string `json:"name"`
	// Kind is File or Directory.
	Kind Kind `json:"ftype"`
	// Size is the formatted size, e.g. "10B" or "2.00KB".
	// Directories report their recursive size.
	Size string `json:"size"`
	// Modified is the formatted modification date, e.g. "Mon  3 Jun 24".
	// Empty if no timestamp was available.
	Modified string `json:"modified"`
}
