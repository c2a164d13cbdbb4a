// Package rules maps asset file names to content-streaming data types.
//
// A Registry holds an ordered list of rules. Each rule pairs a glob pattern
// with the data-type tag the runtime expects in a data_file declaration:
//
//	*handling*.meta   HANDLING_FILE
//	*.awc             AUDIO_WAVEPACK
//
// # Pattern Conventions
//
// Patterns are gitignore-style globs compiled with pathrules and matched
// case-insensitively against the file's base name only, never its
// directory.
//
// # Rule Priority
//
// Rules are evaluated in order and the first match wins. The built-in table
// is ordered the way the runtime tooling has always resolved overlaps, so
// popcycle.dat is AUDIO_SOUNDDATA (the *.dat rule comes first) while
// weaponanimations2.meta keeps its own WEAPON_ANIMATIONS_FILE2 tag.
//
// # Configuration
//
// Extra rules can be declared in fxconv.toml and are placed ahead of the
// built-ins:
//
//	[[data_files]]
//	pattern = "*carvariations_custom.meta"
//	type = "VEHICLE_VARIATION_FILE"
package rules
