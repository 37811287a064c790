package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/lst/internal/listing"
)

// attentionStyle colors user-facing notices such as "The folder is empty".
//
//nolint:gochecknoglobals // Style constant
var attentionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// printNotice writes a single attention message, colored only when the
// writer is a terminal.
func printNotice(writer io.Writer, msg string) {
	if file, ok := writer.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		msg = attentionStyle.Render(msg)
	}

	fmt.Fprintln(writer, msg)
}

// PrintJSON serializes the listing as a JSON array.
func PrintJSON(entries []listing.Entry, writer io.Writer) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable renders the listing as an aligned table with rounded borders.
func PrintTable(entries []listing.Entry, writer io.Writer) error {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Name", "Type", "Size", "Last Modified")

	for _, entry := range entries {
		tbl.Row(entry.Name, entry.Kind.String(), entry.Size, entry.Modified)
	}

	if _, err := fmt.Fprintln(writer, tbl.Render()); err != nil {
		return err
	}

	return nil
}
