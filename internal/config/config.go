// Package config loads the textspan command line settings from the
// environment and an optional yaml file.
package config

import (
	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the command line tool configuration.
type Config struct {
	// Environment selects the logger setup. production logs at info level,
	// development adds debug output
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	// Pad contains the defaults of the pad and repeat commands
	Pad struct {
		// Width is the target length lines are padded or cropped to
		Width int `env:"TEXTSPAN_WIDTH" env-default:"20" yaml:"width"`
		// Char is the pad string
		Char string `env:"TEXTSPAN_PAD_CHAR" env-default:" " yaml:"char"`
		// Side is "before" or "after"
		Side string `env:"TEXTSPAN_SIDE" env-default:"after" yaml:"side"`
	} `yaml:"pad"`

	// Columns contains the defaults of the columns command
	Columns struct {
		// Delimiter splits input lines into cells
		Delimiter string `env:"TEXTSPAN_DELIMITER" env-default:"\t" yaml:"delimiter"`
		// Separator is printed between output columns
		Separator string `env:"TEXTSPAN_SEPARATOR" env-default:"  " yaml:"separator"`
	} `yaml:"columns"`
}

// Load reads the yaml file at configPath, applying environment overrides.
// An empty configPath reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}

	return &cfg, nil
}
