// Test Type: Unit Test
// Description: Tests for the pattern registry that maps file names to data types

package rules_test

import (
	"testing"

	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Classify(t *testing.T) {
	registry := rules.NewDefaultRegistry()

	t.Run("known_patterns", func(t *testing.T) {
		cases := map[string]string{
			"handling.meta":          "HANDLING_FILE",
			"carcols.meta":           "CARCOLS_FILE",
			"model.rpf":              "VEHICLE_METADATA_FILE",
			"vehicles.meta":          "VEHICLE_METADATA_FILE",
			"vehiclelayouts.meta":    "VEHICLE_LAYOUTS_FILE",
			"carvariations.meta":     "VEHICLE_VARIATION_FILE",
			"sfx_engine.awc":         "AUDIO_WAVEPACK",
			"engine_game.dat151.rel": "AUDIO_SOUNDDATA",
			"car.yft":                "VEHICLE_METADATA_FILE",
			"popgroups.ymt":          "FIVEM_LOVES_YOU_341B23A2F0E0F131",
			"dlctext.meta":           "DLCTEXT_FILE",
			"weapons.meta":           "WEAPONINFO_FILE",
			"american.gxt2":          "GXT2",
			"weaponcomponents.meta":  "WEAPON_COMPONENTS_FILE",
			"weaponanimations.meta":  "WEAPON_ANIMATIONS_FILE",
			"weaponanimations2.meta": "WEAPON_ANIMATIONS_FILE2",
		}
		for name, want := range cases {
			got, ok := registry.Classify(name)
			assert.True(t, ok, "expected %s to match", name)
			assert.Equal(t, want, got, "data type for %s", name)
		}
	})

	t.Run("unmatched_name", func(t *testing.T) {
		dataType, ok := registry.Classify("readme.txt")
		assert.False(t, ok)
		assert.Empty(t, dataType)
	})

	t.Run("case_insensitive", func(t *testing.T) {
		got, ok := registry.Classify("HANDLING.META")
		require.True(t, ok)
		assert.Equal(t, "HANDLING_FILE", got)

		got, ok = registry.Classify("Model.RPF")
		require.True(t, ok)
		assert.Equal(t, "VEHICLE_METADATA_FILE", got)
	})

	t.Run("matches_base_name_only", func(t *testing.T) {
		got, ok := registry.Classify("data/handling/readme.txt")
		assert.False(t, ok, "directory names must not influence matching, got %s", got)

		got, ok = registry.Classify(`dlc\audio\sfx\engine.awc`)
		require.True(t, ok)
		assert.Equal(t, "AUDIO_WAVEPACK", got)
	})

	t.Run("first_rule_wins", func(t *testing.T) {
		// *.dat is listed before *popcycle.dat
		got, ok := registry.Classify("popcycle.dat")
		require.True(t, ok)
		assert.Equal(t, "AUDIO_SOUNDDATA", got)

		// *handling*.meta is listed before *vehicles*.meta
		got, ok = registry.Classify("vehicles_handling.meta")
		require.True(t, ok)
		assert.Equal(t, "HANDLING_FILE", got)
	})

	t.Run("classification_is_stable", func(t *testing.T) {
		first, _ := registry.Classify("carcols.meta")
		second, _ := registry.Classify("carcols.meta")
		assert.Equal(t, first, second)
	})
}

func TestRegistry_Match(t *testing.T) {
	registry := rules.NewDefaultRegistry()

	m, ok := registry.Match("stream/cars/weaponanimations2.meta")
	require.True(t, ok)
	assert.Equal(t, "weaponanimations2.meta", m.FileName)
	assert.Equal(t, "*weaponanimations2.meta", m.Pattern)
	assert.Equal(t, "WEAPON_ANIMATIONS_FILE2", m.DataType)
}

func TestNewRegistry(t *testing.T) {
	t.Run("rule_precedence_follows_order", func(t *testing.T) {
		registry, err := rules.NewRegistry([]rules.Rule{
			{Pattern: "special.meta", DataType: "CUSTOM_FILE"},
			{Pattern: "*.meta", DataType: "GENERIC_FILE"},
		})
		require.NoError(t, err)

		got, _ := registry.Classify("special.meta")
		assert.Equal(t, "CUSTOM_FILE", got)
		got, _ = registry.Classify("other.meta")
		assert.Equal(t, "GENERIC_FILE", got)
	})

	t.Run("empty_pattern_is_invalid", func(t *testing.T) {
		_, err := rules.NewRegistry([]rules.Rule{{Pattern: " ", DataType: "X"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("empty_type_is_invalid", func(t *testing.T) {
		_, err := rules.NewRegistry([]rules.Rule{{Pattern: "*.meta"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("rules_returns_copy", func(t *testing.T) {
		registry := rules.NewDefaultRegistry()
		list := registry.Rules()
		require.Len(t, list, len(rules.DefaultRules()))
		assert.Equal(t, registry.Len(), len(list))

		list[0].DataType = "CHANGED"
		assert.Equal(t, "VEHICLE_METADATA_FILE", registry.Rules()[0].DataType)
	})
}

func TestMergeRules(t *testing.T) {
	user := []rules.Rule{{Pattern: "*.dat", DataType: "CUSTOM_DAT"}}
	merged := rules.MergeRules(rules.DefaultRules(), user)

	require.Len(t, merged, len(rules.DefaultRules())+1)
	assert.Equal(t, "CUSTOM_DAT", merged[0].DataType)

	registry, err := rules.NewRegistry(merged)
	require.NoError(t, err)
	got, _ := registry.Classify("popcycle.dat")
	assert.Equal(t, "CUSTOM_DAT", got)
}

func TestIsVehicleContainer(t *testing.T) {
	assert.True(t, rules.IsVehicleContainer("dlc.rpf"))
	assert.True(t, rules.IsVehicleContainer("DLC.RPF"))
	assert.False(t, rules.IsVehicleContainer("dlc.rpf.bak"))
	assert.False(t, rules.IsVehicleContainer("rpf"))
}
