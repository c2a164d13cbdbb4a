// Package testutil provides helpers for testing fxconv components.
//
// Key components:
//   - Environment: an in-memory filesystem rooted at a fixed base directory
//   - WriteZip / ReadZip: build and inspect zip fixtures without touching disk
//   - ListFiles: a sorted view of a directory tree for assertions
//
// All test data should be defined inline, not in external files.
package testutil
