//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const coverProfile = "coverage.out"

// Test groups test targets.
type Test mg.Namespace

// All runs every package's tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Short runs tests without -v.
func (Test) Short() error {
	return sh.RunV(binGo, "test", "./...")
}

// goldenPkgs are the packages with golden files under testdata/golden.
var goldenPkgs = []string{"./internal/store", "./internal/shell"}

// Update rewrites golden files.
func (Test) Update() error {
	args := append([]string{"test"}, goldenPkgs...)
	return sh.RunV(binGo, append(args, "-update")...)
}

// Cover runs all tests with a coverage profile and prints the per-function
// summary.
func (Test) Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}
