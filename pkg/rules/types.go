package rules

// Rule binds a file name pattern to a content-streaming data type
type Rule struct {
	Pattern  string `koanf:"pattern" toml:"pattern" yaml:"pattern"`
	DataType string `koanf:"type" toml:"type" yaml:"type"`
}

// Match is the result of classifying one file name
type Match struct {
	FileName string
	DataType string
	Pattern  string
}
