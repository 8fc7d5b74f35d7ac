package config

// Config holds the optional settings read from the YAML config file.
// Every field has a usable zero value, so a missing file is the same as an empty one.
type Config struct {
	Debug   bool `yaml:"debug"`    // Enable debug logging on stderr
	NoColor bool `yaml:"no_color"` // Disable ANSI colors on every output stream
}

// Overrides carries the command-line flags that were explicitly set.
// A nil field means the flag was not given and the file value wins.
type Overrides struct {
	Debug   *bool
	NoColor *bool
}
