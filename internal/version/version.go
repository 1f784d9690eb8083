// Package version contains the current version of bnflr. It is split from
// the main program for easy use by both the CLI and the HTTP server.
package version

// Current is the string representing the current version of bnflr.
const Current = "0.1.0"
