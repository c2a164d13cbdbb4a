// Package types defines the data model shared by the fxconv conversion
// pipeline: input archives, placement options and the filesystem
// interface every stage works through.
package types
