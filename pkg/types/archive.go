package types

import (
	"path/filepath"
	"strings"
)

// InputArchive is one zip file handed to a conversion run
type InputArchive struct {
	Path string
}

// NewInputArchives wraps plain paths
func NewInputArchives(paths []string) []InputArchive {
	archives := make([]InputArchive, 0, len(paths))
	for _, p := range paths {
		archives = append(archives, InputArchive{Path: p})
	}
	return archives
}

// Name returns the archive file name
func (a InputArchive) Name() string {
	return filepath.Base(a.Path)
}

// DlcName derives the DLC name from the archive file name: everything
// before the first dot, then whatever follows the last underscore.
// "mod_bikes.zip" yields "bikes".
func (a InputArchive) DlcName() string {
	name := a.Name()
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
