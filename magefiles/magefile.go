// Package main contains Mage build targets for praxis-listings developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// dataDir holds sample sources and the bookmark database.
const dataDir = "data"

// Init creates the data directory and writes the sample listing sources.
func Init() error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dataDir, err)
	}
	for name, content := range sampleSources {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Println("   kept", path)
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Data directory initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "praxis-listings"
	cmdPkg  = "./cmd/praxis-listings"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests of every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Serve builds the CLI and serves the sample listings on :8080.
func Serve() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "serve",
		"--source", "news="+filepath.Join(dataDir, "news.yaml"),
		"--source", "partner="+filepath.Join(dataDir, "partners.yaml"),
		"--log-format", "text")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}
