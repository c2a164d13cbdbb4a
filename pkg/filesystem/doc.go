// Package filesystem provides filesystem implementations for fxconv.
//
// Both implementations satisfy types.FS and are backed by afero: NewOS for
// the real disk and NewMemory for tests.
package filesystem
