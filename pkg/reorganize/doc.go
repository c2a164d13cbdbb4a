// Package reorganize turns a set of input archives into a single output
// stream tree.
//
// Each archive is extracted into its own scratch directory, then every file
// from that directory is moved to the destination picked by the classifier.
// The walk never leaves the current archive's scratch directory, so files
// placed by earlier archives are only ever replaced by a later archive that
// maps a file onto the same destination (last write wins).
//
// The scratch directories are removed when Run returns, on success and on
// failure. The stream tree is left for the manifest and packaging steps.
package reorganize
