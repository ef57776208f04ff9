// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// exposes the graph query operations as cobra subcommands, each of which
// builds the graph from the configured files before answering.
package cli
