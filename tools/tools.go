//go:build tools
// +build tools

// Package tools documents development tool dependencies. These are installed
// with `go install` rather than tracked as runtime dependencies.
package tools

// Air - live reload during development
//   Install: go install github.com/air-verse/air@v1.63.0
//
// mockgen - repository mocks under internal/mocks
//   Invoked via `go generate ./internal/mocks` (version pinned in the directives).
