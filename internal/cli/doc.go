// Package cli implements the command-line interface for calendario.
//
// The cli package provides the Cobra-based commands: serve starts the mobile
// web UI, grid prints the month grid, day opens an interactive day screen in
// the terminal, and config manages the optional YAML configuration file.
package cli
