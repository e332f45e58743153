package cli

import (
	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/executor"
	"github.com/ksyq12/stead/internal/input"
	"github.com/ksyq12/stead/internal/setup"
)

// RunnerFactory builds the setup pipeline for a resolved project.
type RunnerFactory func(project *config.Project, exec executor.CommandExecutor) (*setup.Runner, error)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	Executor  executor.CommandExecutor
	Stdin     input.Reader
	NewRunner RunnerFactory
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	Executor:  executor.NewSystemExecutor(),
	Stdin:     input.NewStdinReader(),
	NewRunner: setup.New,
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}
