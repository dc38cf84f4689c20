// Package fileio reads and writes the document file.
//
// Load splits a file into rows and remembers its line ending and whether
// it ended with one, so that saving an unmodified document reproduces the
// file byte for byte. Save replaces the file atomically: the content goes
// to a uniquely named temporary file in the same directory, is synced, and
// is renamed over the target with the original permissions.
//
// Watcher reports modifications made to the file by other programs.
package fileio
