package rules

// Data types that need special handling elsewhere
const (
	// VehicleContainerPattern identifies packed .rpf bundles. They are
	// routed to mods/ and never declared one by one.
	VehicleContainerPattern = "*.rpf"

	VehicleMetadataFile = "VEHICLE_METADATA_FILE"
)

// DefaultRules returns the built-in rule table.
// Order matters: the first matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: VehicleContainerPattern, DataType: VehicleMetadataFile},
		{Pattern: "*.dat", DataType: "AUDIO_SOUNDDATA"},
		{Pattern: "*.rel", DataType: "AUDIO_SOUNDDATA"},
		{Pattern: "*.awc", DataType: "AUDIO_WAVEPACK"},
		{Pattern: "*.yft", DataType: VehicleMetadataFile},
		{Pattern: "*handling*.meta", DataType: "HANDLING_FILE"},
		{Pattern: "*vehiclelayouts*.meta", DataType: "VEHICLE_LAYOUTS_FILE"},
		{Pattern: "*vehicles*.meta", DataType: VehicleMetadataFile},
		{Pattern: "*carcols*.meta", DataType: "CARCOLS_FILE"},
		{Pattern: "*carvariations*.meta", DataType: "VEHICLE_VARIATION_FILE"},
		{Pattern: "*unlocks.meta", DataType: "CONTENT_UNLOCKING_META_FILE"},
		{Pattern: "*ptfxassetinfo.meta", DataType: "PTFXASSETINFO_FILE"},
		{Pattern: "*vehiclemodelsets.meta", DataType: "AMBIENT_VEHICLE_MODEL_SET_FILE"},
		{Pattern: "*popcycle.dat", DataType: "POPSCHED_FILE"},
		{Pattern: "*popgroups.ymt", DataType: "FIVEM_LOVES_YOU_341B23A2F0E0F131"},
		{Pattern: "*dlctext.meta", DataType: "DLCTEXT_FILE"},
		{Pattern: "*weaponanimations.meta", DataType: "WEAPON_ANIMATIONS_FILE"},
		{Pattern: "*weapons.meta", DataType: "WEAPONINFO_FILE"},
		{Pattern: "*gxt2", DataType: "GXT2"},
		{Pattern: "*weaponcomponents.meta", DataType: "WEAPON_COMPONENTS_FILE"},
		{Pattern: "*weapontypes.meta", DataType: "WEAPON_TYPES_FILE"},
		{Pattern: "*weaponarchetypes.meta", DataType: "WEAPON_ARCHETYPES_FILE"},
		{Pattern: "*weaponloadout.meta", DataType: "WEAPON_LOADOUT_FILE"},
		{Pattern: "*weaponattachments.meta", DataType: "WEAPON_ATTACHMENTS_FILE"},
		{Pattern: "*weaponanimationset.meta", DataType: "WEAPON_ANIMATION_SET_FILE"},
		{Pattern: "*weaponanimations2.meta", DataType: "WEAPON_ANIMATIONS_FILE2"},
	}
}

// MergeRules puts user rules in front of the defaults so they match first
func MergeRules(defaults, user []Rule) []Rule {
	merged := make([]Rule, 0, len(defaults)+len(user))
	merged = append(merged, user...)
	return append(merged, defaults...)
}
