package paths_test

import (
	"testing"

	"github.com/arthur-debert/fxconv/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	t.Run("rooted_layout", func(t *testing.T) {
		l := paths.New("/srv/fivem/")
		assert.Equal(t, "/srv/fivem", l.Base())
		assert.Equal(t, "/srv/fivem/temp_extracted", l.WorkspaceRoot())
		assert.Equal(t, "/srv/fivem/temp_extracted/work", l.ExtractDir())
		assert.Equal(t, "/srv/fivem/temp_extracted/stream", l.StreamDir())
		assert.Equal(t, "/srv/fivem/temp_extracted/stream/fxmanifest.lua", l.ManifestPath())
		assert.Equal(t, "/srv/fivem/converted_mods.zip", l.OutputArchive())
	})

	t.Run("empty_base_is_current_dir", func(t *testing.T) {
		l := paths.New("")
		assert.Equal(t, ".", l.Base())
		assert.Equal(t, "converted_mods.zip", l.OutputArchive())
		assert.Equal(t, "temp_extracted/stream", l.StreamDir())
	})

	t.Run("archive_extract_dirs_are_unique", func(t *testing.T) {
		l := paths.New("/base")
		assert.Equal(t, "/base/temp_extracted/work/0-mod_cars", l.ArchiveExtractDir(0, "mod_cars.zip"))
		assert.Equal(t, "/base/temp_extracted/work/1-mod_cars", l.ArchiveExtractDir(1, "mod_cars.zip"))
		assert.Equal(t, "/base/temp_extracted/work/2-archive", l.ArchiveExtractDir(2, ".zip"))
	})
}
