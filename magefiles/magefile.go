//go:build mage

// Package main contains Mage build targets for txtpdf developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "txtpdf"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, "."); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Sample converts testdata/sample.txt with both backends into bin/.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	for _, backend := range []string{"canvas", "fpdf"} {
		out := filepath.Join(binDir, "sample-"+backend+".pdf")
		if err := sh.RunV(bin, filepath.Join("testdata", "sample.txt"), "-o", out, "--backend", backend); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
