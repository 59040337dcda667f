// Package version reports the build version of cfgforge, kept separate
// from cmd/cfgforge so other packages can reference it without importing
// the main command.
package version

// Current is the release tag the running binary was built from.
const Current = "0.1.0"
