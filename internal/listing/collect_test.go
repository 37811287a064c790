package listing_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/lst/internal/listing"
)

func TestCollectEmptyDirectory(t *testing.T) {
	entries, total, err := listing.Collect(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, listing.ByteCount(0), total)
}

func TestCollectMissingDirectory(t *testing.T) {
	_, _, err := listing.Collect(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestCollectFilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	writeBytes(t, dir, "a.txt", 10)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeBytes(t, sub, "inner.bin", 2048)

	entries, total, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, listing.File, entries[0].Kind)
	assert.Equal(t, "10B", entries[0].Size)

	assert.Equal(t, "sub", entries[1].Name)
	assert.Equal(t, listing.Directory, entries[1].Kind)
	assert.Equal(t, "2.00KB", entries[1].Size)

	assert.Equal(t, listing.ByteCount(2058), total)
}

func TestCollectEmptySubdirectorySizesAsZero(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "hollow"), 0o755))

	entries, _, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, listing.Directory, entries[0].Kind)
	assert.Equal(t, "0B", entries[0].Size)
}

func TestCollectOmitsEntryWithUnreadableMetadata(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	writeBytes(t, dir, "good.txt", 5)

	// Stat on a dangling symlink fails, so the entry is omitted.
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "ghost")))

	entries, _, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "good.txt", entries[0].Name)
}

func TestCollectUnreadableSubdirectorySizesAsZero(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced the same way on windows")
	}

	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}

	dir := t.TempDir()

	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	writeBytes(t, locked, "hidden.bin", 1024)
	require.NoError(t, os.Chmod(locked, 0o000))

	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	entries, _, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "0B", entries[0].Size)
}

func TestCollectFollowsSymlinkForDirectChildKind(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	target := t.TempDir()
	writeBytes(t, target, "inner.bin", 2048)

	dir := t.TempDir()
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	entries, _, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, listing.Directory, entries[0].Kind)
	assert.Equal(t, "2.00KB", entries[0].Size)
}

func TestCollectModifiedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeBytes(t, dir, "dated.txt", 1)

	mtime := time.Date(2024, time.June, 3, 12, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	entries, _, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mon  3 Jun 24", entries[0].Modified)
}

func TestCollectReplacesInvalidNameWithPlaceholder(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("creating non-UTF-8 file names is only reliable on linux")
	}

	dir := t.TempDir()
	writeBytes(t, dir, string([]byte{0xff, 0xfe})+".bin", 3)

	entries, _, err := listing.Collect(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "???", entries[0].Name)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "File", listing.File.String())
	assert.Equal(t, "Directory", listing.Directory.String())
}
