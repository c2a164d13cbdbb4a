package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	t.Run("zip_round_trip", func(t *testing.T) {
		env := NewEnvironment(t)
		p := env.Zip("mods/mod_bikes.zip", map[string]string{
			"stream/":            "",
			"stream/model.rpf":   "rpf",
			"data/vehicles.meta": "meta",
		})

		assert.Equal(t, "/fxconv/mods/mod_bikes.zip", p)
		assert.Equal(t, map[string]string{
			"stream/model.rpf":   "rpf",
			"data/vehicles.meta": "meta",
		}, ReadZip(t, env.FS, p))
	})

	t.Run("list_files_is_sorted_and_relative", func(t *testing.T) {
		env := NewEnvironment(t)
		env.Files(env.Path("tree"), map[string]string{
			"b/two.meta": "2",
			"a.meta":     "1",
			"b/a/x.rpf":  "x",
		})

		assert.Equal(t, []string{"a.meta", "b/a/x.rpf", "b/two.meta"}, ListFiles(t, env.FS, env.Path("tree")))
	})

	t.Run("missing_root_lists_nothing", func(t *testing.T) {
		env := NewEnvironment(t)
		assert.Equal(t, []string{}, ListFiles(t, env.FS, env.Path("nope")))
		assert.False(t, Exists(env.FS, env.Path("nope")))
	})

	t.Run("exists", func(t *testing.T) {
		env := NewEnvironment(t)
		require.NoError(t, env.FS.WriteFile(env.Path("a"), []byte("a"), 0644))
		assert.True(t, Exists(env.FS, env.Path("a")))
	})
}
