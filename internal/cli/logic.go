package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/lst/internal/listing"
)

func logic(options Options) error {
	if options.Debug {
		log.SetLevel(log.DebugLevel)
	}

	exists, err := pathExists(options.Path)
	if err != nil {
		printNotice(os.Stdout, "Error reading directory.")

		return nil
	}

	if !exists {
		printNotice(os.Stdout, "Path does not exist.")

		return nil
	}

	// Collect once and branch on the render mode.
	entries, total, err := listing.Collect(options.Path)
	if err != nil {
		log.Debug("listing failed", "path", options.Path, "err", err)
		printNotice(os.Stdout, "Error reading directory.")

		return nil
	}

	if len(entries) == 0 {
		printNotice(os.Stdout, "The folder is empty")

		return nil
	}

	log.Debug("listing complete",
		"path", options.Path,
		"entries", len(entries),
		"total", humanize.IBytes(total))

	if options.JSON {
		return PrintJSON(entries, os.Stdout)
	}

	return PrintTable(entries, os.Stdout)
}

// pathExists reports whether path exists. A definitive "does not exist"
// answer is not an error; anything else that prevents the check from
// completing is.
func pathExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("checking path %q: %w", path, err)
	}

	return true, nil
}
