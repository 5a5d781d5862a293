// Package main provides build targets for Chalice Compass using Mage.
//
// Usage:
//
//	mage build      Compile the compass binary to bin/
//	mage test       Run all tests
//	mage lint       Run golangci-lint
//	mage seed       Create ChaliceCompass.db from seeds/sample.yaml
//	mage clean      Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "compass"
	binaryDir  = "bin"
	cmdDir     = "./cmd/compass"
	buildPkg   = "github.com/dmitrijs2005/chalicecompass/internal/buildinfo"
	seedFile   = "seeds/sample.yaml"
	devDB      = "ChaliceCompass.db"
)

// Build compiles the compass binary to bin/, stamping version data.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version, _ := sh.Output("git", "describe", "--tags", "--always")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	ldflags := fmt.Sprintf("-X %[1]s.buildVersion=%[2]s -X %[1]s.buildCommit=%[3]s", buildPkg, orNA(version), orNA(commit))
	return sh.RunV(binGo, "build", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Seed creates a development database next to the sources. It refuses to
// overwrite an existing file.
func Seed() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "init", devDB, "--seed", seedFile)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
