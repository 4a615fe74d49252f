package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Consolidate builds the CLI and produces a fresh consolidated corpus from sources/.
// See prd003-consolidation for full requirements.
func Consolidate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "consolidate")
}

// Smoke consolidates the corpus and runs a distribution question through ask.
func Smoke() error {
	mg.Deps(Consolidate)
	return sh.RunV(filepath.Join(binDir, binName), "ask", "--show-route",
		"how many patents per technology?")
}
