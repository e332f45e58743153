// Package config resolves the project configuration for a setup run.
//
// The project name comes from the name field of package.json in the
// working directory when one is readable, otherwise from the directory
// name itself. All other settings come from command-line options with
// documented defaults rooted at the user's home directory.
//
// The resolved Project value is built once at startup and never
// mutated afterwards.
package config
