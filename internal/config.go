package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

const (
	DefaultRomDirectory    = "../ROMS"
	DefaultOutputDirectory = "output"
	DefaultLanguage        = "en"
	DefaultFontFamily      = "Press Start 2P"
)

var configFiles = []string{"config.json", "config.yml"}

type Config struct {
	RomDirectory    string   `json:"rom_directory,omitempty" yaml:"rom_directory,omitempty"`
	OutputDirectory string   `json:"output_directory,omitempty" yaml:"output_directory,omitempty"`
	Language        string   `json:"language,omitempty" yaml:"language,omitempty"`
	LogLevel        LogLevel `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	FontFamily      string   `json:"font_family,omitempty" yaml:"font_family,omitempty"`

	// BaseURL is the public address of the generated site. When set, a
	// sitemap and a QR code linking to it are written as well.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Source is the config file the values came from, empty for defaults.
	Source string `json:"-" yaml:"-"`
}

func IsDevelopment() bool {
	return os.Getenv("ENVIRONMENT") == "DEV"
}

func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c Config) ToLoggable() any {
	return map[string]any{
		"source":           c.Source,
		"rom_directory":    c.RomDirectory,
		"output_directory": c.OutputDirectory,
		"language":         c.Language,
		"log_level":        c.LogLevel,
		"font_family":      c.FontFamily,
		"base_url":         c.BaseURL,
	}
}

// LoadConfig reads the first config file found in dir. No config file is not
// an error: every setting has a default.
func LoadConfig(fs afero.Fs, dir string) (*Config, error) {
	var data []byte
	var foundFile string

	for _, filename := range configFiles {
		path := filepath.Join(dir, filename)
		b, err := afero.ReadFile(fs, path)
		if err == nil {
			data = b
			foundFile = path
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if foundFile == "" {
		return DefaultConfig(), nil
	}

	var config Config
	var err error

	switch ext := strings.ToLower(filepath.Ext(foundFile)); ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return nil, fmt.Errorf("unknown config file type: %s", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", foundFile, err)
	}

	config.Source = foundFile
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.RomDirectory == "" {
		c.RomDirectory = DefaultRomDirectory
	}

	if c.OutputDirectory == "" {
		c.OutputDirectory = DefaultOutputDirectory
	}

	if c.Language == "" {
		c.Language = DefaultLanguage
	}

	if c.FontFamily == "" {
		c.FontFamily = DefaultFontFamily
	}

	c.LogLevel = LogLevel(strings.ToUpper(string(c.LogLevel)))
	if c.LogLevel == "" {
		c.LogLevel = LogLevelInfo
	}

	if IsDevelopment() {
		c.LogLevel = LogLevelDebug
	}

	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}
