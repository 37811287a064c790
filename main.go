package main

import (
	"fmt"
	"os"

	"github.com/idelchi/lst/internal/cli"
)

// version is injected at build time via -ldflags.
//
//nolint:gochecknoglobals // Set by the linker
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
