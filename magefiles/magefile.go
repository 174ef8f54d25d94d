//go:build mage

// Package main provides build targets for the plugcalc project using Mage.
//
// Usage:
//
//	mage build      Compile calc binary to bin/
//	mage test       Run all tests
//	mage testRace   Run all tests with the race detector
//	mage smoke      Build, then run calc against a scratch history file
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install calc to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "calc"
	binaryDir  = "bin"
	cmdDir     = "./cmd/calc"
)

// Build compiles the calc binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", binaryPath(), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestRace runs all tests with the race detector.
func TestRace() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Smoke builds calc and drives each history format and a plugin through the
// binary.
func Smoke() error {
	mg.Deps(Build)

	dir, err := os.MkdirTemp("", "calc-smoke-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	env := map[string]string{
		"CALC_CONFIG_DIR": filepath.Join(dir, "config"),
		"CALC_DATA_DIR":   filepath.Join(dir, "data"),
		"LOG_LEVEL":       "error",
	}
	calc := func(args ...string) (string, error) {
		return sh.OutputWith(env, binaryPath(), args...)
	}

	csvFile := filepath.Join(dir, "history.csv")
	if _, err := calc("eval", "--history", csvFile, "6", "/", "2"); err != nil {
		return err
	}
	for _, dst := range []string{"history.jsonl", "history.db"} {
		if _, err := calc("history", "convert", csvFile, filepath.Join(dir, dst)); err != nil {
			return err
		}
		out, err := calc("history", "show", filepath.Join(dir, dst))
		if err != nil {
			return err
		}
		if !strings.Contains(out, "divide") {
			return fmt.Errorf("smoke: %s lost its record:\n%s", dst, out)
		}
	}

	out, err := calc("plugin", "run", "sqrt", "16")
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "4" {
		return fmt.Errorf("smoke: sqrt 16 = %q, want 4", out)
	}
	fmt.Println("smoke: ok")
	return nil
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, binaryPath())
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
