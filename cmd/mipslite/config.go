package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command. Command line
// flags override values loaded from the --config file.
type Config struct {
	KeepGoing bool              `yaml:"keep_going" json:"keep_going" jsonschema:"title=Keep going,description=Skip malformed lines and report every error at the end"`
	Workers   int               `yaml:"workers" json:"workers" jsonschema:"title=Workers,description=Concurrent decoders; 0 or 1 decodes line by line,minimum=0"`
	MaxTicks  int               `yaml:"max_ticks" json:"max_ticks" jsonschema:"title=Max ticks,description=Instructions run executes before giving up,minimum=0"`
	Color     bool              `yaml:"color" json:"color" jsonschema:"title=Color,description=Highlight listings on a terminal"`
	LogLevel  string            `yaml:"log_level" json:"log_level" jsonschema:"title=Log level,enum=debug,enum=info,enum=warn,enum=error"`
	Defines   map[string]string `yaml:"defines" json:"defines" jsonschema:"title=Defines,description=Equates predefined for the assembler"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(data, &cfg)
	return
}
