// Package config loads fxconv settings.
//
// Settings are layered, later layers winning:
//
//  1. embedded/defaults.toml, compiled into the binary
//  2. a config file: an explicit path, or the first of fxconv.toml,
//     .fxconv.toml and fxconv.yaml found in the base directory
//  3. overrides from the command line
//
// Extra [[data_files]] rules from the config file are placed in front of
// the built-in rules so they win on conflicts.
package config
