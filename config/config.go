// Package config loads the linkheader CLI configuration.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/devon-mar/linkheader/pagination"
	"github.com/devon-mar/linkheader/utils/envtag"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	cfgTag = "cfg"
	// EnvPrefix is prepended to the cfg tag of each field to get the name
	// of the environment variable overriding it.
	EnvPrefix = "LINKHDR_"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	// Output format of the parse command.
	Output string `yaml:"output" cfg:"output" validate:"oneof=text json yaml"`
	// Key links by relation string instead of optional relation.
	ByRelation bool `yaml:"by_relation" cfg:"by_relation"`
	// Query parameter holding the page number.
	PageParam string `yaml:"page_param" cfg:"page_param" validate:"required"`
	// Only print these relations. Empty means all.
	Relations []string `yaml:"relations" cfg:"relations" validate:"dive,required"`
	LogLevel  string   `yaml:"log_level" cfg:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// Default returns the configuration used when there is no config file.
func Default() *Config {
	return &Config{
		Output:    OutputText,
		PageParam: pagination.DefaultParam,
		LogLevel:  "info",
	}
}

// Validate checks c.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ReadConfig reads the config at path on top of the defaults, then applies
// environment overrides and validates the result. If optional is true a
// missing file is not an error.
func ReadConfig(path string, optional bool) (*Config, error) {
	c := Default()

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := decode(f, c); err != nil {
			return nil, err
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := envtag.Unmarshal(cfgTag, EnvPrefix, c); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(r io.Reader, c *Config) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	// https://github.com/go-yaml/yaml/issues/639#issuecomment-666935833
	if err := d.Decode(c); err != nil && err != io.EOF {
		return err
	}
	return nil
}
