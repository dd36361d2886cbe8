package rdconv

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user options for a conversion run
type Config struct {
	Header  Header    // Metadata written before the translated body
	Verbose bool      // Log progress details
	Logger  io.Writer // Destination for log output (nil = stderr)
}

// Header is the Rd metadata block that opens the generated file
type Header struct {
	Author  string   `yaml:"author"`  // Shown in the "% Generated file" comment
	Name    string   `yaml:"name"`    // \name{} entry
	Aliases []string `yaml:"aliases"` // One \alias{} entry each
	Title   string   `yaml:"title"`   // \title{} entry
}

// DefaultHeader is the metadata of the re2 package help page
var DefaultHeader = Header{
	Author:  "Girish Palya",
	Name:    "re2_syntax",
	Aliases: []string{"re2_syntax", "re2_regular_expressions_syntax"},
	Title:   "RE2 Regular Expression Syntax",
}

// DefaultConfig returns a config that reproduces the re2 help page
func DefaultConfig() Config {
	h := DefaultHeader
	h.Aliases = append([]string(nil), DefaultHeader.Aliases...)
	return Config{
		Header:  h,
		Verbose: false,
		Logger:  nil, // stderr
	}
}

// LoadConfig reads header metadata from a YAML file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg.Header); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Header.Name == "" {
		return cfg, fmt.Errorf("config %s: name must not be empty", path)
	}
	return cfg, nil
}

// getLogger returns the writer to log to, defaulting to os.Stderr because
// stdout usually carries the generated document.
func getLogger(config Config) io.Writer {
	if config.Logger == nil {
		return os.Stderr
	}
	return config.Logger
}

// logf writes a log line when verbose output is enabled
func logf(config Config, format string, args ...interface{}) {
	if !config.Verbose {
		return
	}
	fmt.Fprintf(getLogger(config), format+"\n", args...)
}
