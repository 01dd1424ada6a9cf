//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for islab using Mage.
//
// Usage:
//
//	mage build       Compile the islab binary to bin/
//	mage install     Install islab to GOPATH/bin
//	mage clean       Remove build artifacts
//	mage lint        Run gofmt and golangci-lint
//	mage test:all    Run all tests with the race detector
//	mage test:unit   Run tests in short mode
//	mage test:cover  Write coverage to bin/coverage.out
//	mage stats       Print Go LOC per package as JSON
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binGit     = "git"
	binaryName = "islab"
	binaryDir  = "bin"
	cmdDir     = "./cmd/islab"
	versionVar = "github.com/ArturMukhamedjanov/is-lab1-front/internal/cli.Version"
)

// version is the tag-derived version stamped into the binary, or "dev"
// outside a git checkout.
func version() string {
	out, err := sh.Output(binGit, "describe", "--tags", "--always", "--dirty")
	if err != nil || out == "" {
		return "dev"
	}
	return strings.TrimPrefix(out, "v")
}

// Build compiles the islab binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := "-X " + versionVar + "=" + version()
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
