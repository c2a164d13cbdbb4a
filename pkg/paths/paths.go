package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default directories and files.
// These define the run layout and are NOT user-configurable.
const (
	// WorkspaceDirName holds every scratch directory of a run
	WorkspaceDirName = "temp_extracted"

	// ExtractDirName is where archives are unpacked
	ExtractDirName = "work"

	// StreamDirName is the output tree that gets packaged
	StreamDirName = "stream"

	// ManifestFileName is written at the stream root
	ManifestFileName = "fxmanifest.lua"

	// OutputArchiveName is the final package
	OutputArchiveName = "converted_mods.zip"
)

// Layout resolves the fixed run paths under a base directory
type Layout struct {
	base string
}

// New creates a layout rooted at base. An empty base means the current
// directory.
func New(base string) Layout {
	if base == "" {
		base = "."
	}
	return Layout{base: filepath.Clean(base)}
}

// Base returns the base directory
func (l Layout) Base() string {
	return l.base
}

// WorkspaceRoot returns the directory removed at the end of every run
func (l Layout) WorkspaceRoot() string {
	return filepath.Join(l.base, WorkspaceDirName)
}

// ExtractDir returns the parent of all per-archive extraction directories
func (l Layout) ExtractDir() string {
	return filepath.Join(l.WorkspaceRoot(), ExtractDirName)
}

// ArchiveExtractDir returns the extraction directory for the index-th
// archive. The index keeps two archives with the same name apart.
func (l Layout) ArchiveExtractDir(index int, archiveName string) string {
	name := strings.TrimSuffix(archiveName, filepath.Ext(archiveName))
	if name == "" {
		name = "archive"
	}
	return filepath.Join(l.ExtractDir(), fmt.Sprintf("%d-%s", index, name))
}

// StreamDir returns the output tree root
func (l Layout) StreamDir() string {
	return filepath.Join(l.WorkspaceRoot(), StreamDirName)
}

// ManifestPath returns where the manifest is written
func (l Layout) ManifestPath() string {
	return filepath.Join(l.StreamDir(), ManifestFileName)
}

// OutputArchive returns the final package path
func (l Layout) OutputArchive() string {
	return filepath.Join(l.base, OutputArchiveName)
}
