package main

import (
	"os"
	"path/filepath"
	"strings"

	"springbox/internal/cli"
)

func main() {
	// Change working directory to executable location for deployed builds so
	// relative sound paths resolve. Skip this for "go run" which puts the
	// binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
