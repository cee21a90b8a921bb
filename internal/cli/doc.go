// Package cli wires the revu command line: flag parsing, config loading,
// and the review pipeline driver. Command handlers set the package exit
// code instead of calling os.Exit so deferred cleanup always runs.
package cli
