// Package classifier decides where each extracted file lands in the
// output stream tree.
package classifier

import (
	"path"
	"strings"

	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/types"
)

// Destination folders used under a stream root
const (
	ModsDir     = "mods"
	AudioDir    = "audio"
	DataDir     = "data"
	VehiclesDir = "vehicles"
)

// folderHint maps a source directory substring to a destination folder
type folderHint struct {
	needles []string
	folder  string
}

// folderHints are checked in order; the first hit wins
var folderHints = []folderHint{
	{needles: []string{"audio", "dlc"}, folder: AudioDir},
	{needles: []string{"data"}, folder: DataDir},
	{needles: []string{"vehiclemods"}, folder: VehiclesDir},
}

// Classifier computes destinations for a fixed set of placement options
type Classifier struct {
	opts types.PlacementOptions
}

// New creates a classifier bound to opts
func New(opts types.PlacementOptions) *Classifier {
	return &Classifier{opts: opts}
}

// StreamRoot returns the archive's stream root relative to the output
// tree. Only ClassifyFiles with ByDlcName yields a per-archive folder.
func (c *Classifier) StreamRoot(archive types.InputArchive) string {
	if c.opts.ClassifyFiles && c.opts.ClassificationMode == types.ByDlcName {
		return archive.DlcName()
	}
	return ""
}

// Destination maps sourceRel, a slash path relative to the archive's
// extraction root, to a slash path relative to the output tree.
func (c *Classifier) Destination(archive types.InputArchive, sourceRel string) string {
	sourceRel = strings.ReplaceAll(sourceRel, `\`, "/")
	name := path.Base(sourceRel)
	root := c.StreamRoot(archive)

	if rules.IsVehicleContainer(name) {
		return path.Join(root, ModsDir, name)
	}

	if c.opts.ClassifyToFolders {
		if folder := FolderFor(path.Dir(sourceRel)); folder != "" {
			return path.Join(root, folder, name)
		}
	}

	return path.Join(root, name)
}

// FolderFor sniffs a source directory and returns the destination folder
// it suggests, or "" when nothing matches
func FolderFor(sourceDir string) string {
	if sourceDir == "." {
		return ""
	}
	dir := strings.ToLower(sourceDir)
	for _, hint := range folderHints {
		for _, needle := range hint.needles {
			if strings.Contains(dir, needle) {
				return hint.folder
			}
		}
	}
	return ""
}
