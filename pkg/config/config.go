package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/go-delve/framewalk/pkg/logflags"
)

const (
	configDir       string = "framewalk"
	configDirHidden string = ".framewalk"
	configFile      string = "config.yml"

	// DefaultMaxDepth is the number of frames walked when the config file
	// does not set max-depth.
	DefaultMaxDepth = 128
)

// ColorMode selects when backtraces are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses the value of the color option.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("invalid color mode %q, expected one of auto, always, never", s)
}

// Config defines all configuration options available to be set through the config file.
type Config struct {
	// MaxDepth is the maximum number of frames walked per thread.
	MaxDepth int `yaml:"max-depth,omitempty"`

	// If Disassemble is true the instruction at the program counter of
	// each frame is printed.
	Disassemble bool `yaml:"disassemble"`

	// Color is one of auto, always or never.
	Color ColorMode `yaml:"color,omitempty"`

	// Registers lists the registers printed for each frame, by name. All
	// valid registers are printed when it is empty.
	Registers []string `yaml:"registers"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{MaxDepth: DefaultMaxDepth, Color: ColorAuto}
}

func (c *Config) normalize() error {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	m, err := ParseColorMode(string(c.Color))
	if err != nil {
		return err
	}
	c.Color = m
	return nil
}

// LoadConfig attempts to populate a Config object from the config.yml file.
// Problems are logged and the defaults are returned.
func LoadConfig() *Config {
	log := logflags.ConfigLogger()
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		log.Errorf("Unable to get config file path: %v.", err)
		return Default()
	}
	log.Debugf("loading configuration from %s", fullConfigFile)

	data, err := os.ReadFile(fullConfigFile)
	if os.IsNotExist(err) {
		if err := createDefaultConfig(fullConfigFile); err != nil {
			log.Errorf("Error creating default config file: %v", err)
		}
		return Default()
	}
	if err != nil {
		log.Errorf("Unable to read config data: %v.", err)
		return Default()
	}

	c, err := parse(data)
	if err != nil {
		log.Errorf("Unable to decode config file: %v.", err)
		return Default()
	}
	return c
}

func parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveConfig will marshal and save the config struct
// to disk.
func SaveConfig(conf *Config) error {
	fullConfigFile, err := GetConfigFilePath(configFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullConfigFile), 0700); err != nil {
		return err
	}

	out, err := yaml.Marshal(*conf)
	if err != nil {
		return err
	}
	return os.WriteFile(fullConfigFile, out, 0600)
}

func createDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("unable to create config directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0600); err != nil {
		return fmt.Errorf("unable to write default configuration: %v", err)
	}
	return nil
}

const defaultConfig = `# Configuration file for framewalk.

# This is the default configuration file. Available options are provided, but disabled.
# Delete the leading hash mark to enable an item.

# Maximum number of frames walked for each thread.
# max-depth: 128

# Uncomment the following line to print the instruction at the program
# counter of every frame.
# disassemble: true

# When to colorize backtraces: auto, always or never.
# color: auto

# Registers printed for every frame. All valid registers are printed when
# the list is empty.
# registers: [pc, sp, fp]
`

// GetConfigFilePath gets the full path to the given config file name.
//
// $XDG_CONFIG_HOME/framewalk (or ~/.config/framewalk) is used unless
// ~/.framewalk already exists.
func GetConfigFilePath(file string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if home != "" {
		legacy := filepath.Join(home, configDirHidden)
		if fi, err := os.Stat(legacy); err == nil && fi.IsDir() {
			return filepath.Join(legacy, file), nil
		}
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, configDir, file), nil
}
