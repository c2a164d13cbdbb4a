// Package paths provides centralized path handling for fxconv.
//
// A conversion run works inside a fixed layout under a base directory
// (the current directory for the CLI):
//
//	<base>/temp_extracted/work/<n>-<archive>/   scratch extraction, one dir per archive
//	<base>/temp_extracted/stream/               the reorganized output tree
//	<base>/temp_extracted/stream/fxmanifest.lua the generated manifest
//	<base>/converted_mods.zip                   the final package
//
// These names are not user-configurable. Two runs sharing a base directory
// will corrupt each other; callers must not run them concurrently.
package paths
