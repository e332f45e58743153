package cli

import (
	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/executor"
	"github.com/ksyq12/stead/internal/input"
	"github.com/ksyq12/stead/internal/setup"
)

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults:
// a recording executor, a stdin that answers yes, and the real runner
// factory.
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			Executor:  &executor.MockExecutor{},
			Stdin:     input.NewStringReader("y\n"),
			NewRunner: setup.New,
		},
	}
}

// WithExecutor sets the executor for the mock
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// WithStdinInput sets the stdin input for the mock
func (b *MockDependenciesBuilder) WithStdinInput(inputs ...string) *MockDependenciesBuilder {
	b.deps.Stdin = input.NewStringReader(inputs...)
	return b
}

// WithRunnerPaths makes the runner factory use explicit hosts-file and
// keychain locations instead of the system ones
func (b *MockDependenciesBuilder) WithRunnerPaths(hostsFile, keychain string) *MockDependenciesBuilder {
	b.deps.NewRunner = func(project *config.Project, exec executor.CommandExecutor) (*setup.Runner, error) {
		return setup.NewWithPaths(project, exec, hostsFile, keychain), nil
	}
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
