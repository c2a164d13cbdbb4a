package fxconv

// Short messages (one-liners)
const (
	MsgRootShort       = "Convert single-player vehicle mods into a FiveM resource"
	MsgConvertShort    = "Convert mod archives into converted_mods.zip"
	MsgRulesShort      = "Show the file classification rules"
	MsgGenConfigShort  = "Print or write a starter fxconv.toml"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default: fxconv.toml in the base directory)"
	MsgFlagBaseDir = "Directory holding the workspace and converted_mods.zip"
	MsgFlagFormat  = "Output format: auto, table, text or yaml"

	MsgFlagClassify          = "Give every archive its own folder"
	MsgFlagMode              = "Classification mode: dlc-name or resource-type"
	MsgFlagClassifyToFolders = "Sort files into audio/, data/ and vehicles/"
	MsgFlagSingleVehicle     = "Reserved, currently has no effect"
	MsgFlagKeepOriginal      = "Keep the input archives after conversion"
	MsgFlagDownloadDir       = "Where remote archives are saved"
	MsgFlagWrite             = "Write fxconv.toml to the base directory instead of stdout"

	MsgErrNoArchives   = "no archives given"
	MsgErrConfigExists = "%s already exists"
	MsgConfigWritten   = "Wrote %s"
)

// Long messages
const (
	MsgRootLong = `fxconv takes zip archives of single-player vehicle and weapon mods and
repackages them as one add-on resource with a generated fxmanifest.lua.`

	MsgConvertLong = `Convert extracts every archive, reorganizes the files into one stream tree,
declares known data files in fxmanifest.lua and writes converted_mods.zip
to the base directory.

Arguments are local zip files or http(s) URLs. URLs are downloaded first.`

	MsgConvertExample = `  fxconv convert mod_bikes.zip mod_cars.zip
  fxconv convert --classify --mode dlc-name *.zip
  fxconv convert --classify-to-folders https://example.com/mod_police.zip`

	MsgGenConfigExample = `  fxconv gen-config        # Output to stdout
  fxconv gen-config -w     # Write to ./fxconv.toml`
)
