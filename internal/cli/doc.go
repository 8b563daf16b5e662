// Package cli wires together the Cobra command tree for the ecmerge binary.
//
// It defines the root command and its subcommands (merge, compare, config,
// version), binds flags, reads configuration, drives the parser and
// comparator, and returns deterministic exit codes.
package cli
