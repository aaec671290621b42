// Config loading for the gridfield CLI.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = ".gridfield"
	configFileType = "yaml"

	// Config keys. Command-line flags override these values.
	cfgKeySide = "side"
	cfgKeyMode = "mode"
	cfgKeySeed = "seed"
	cfgKeySort = "sort"

	// Defaults applied when neither flag nor config file set a value.
	defaultSide = 16
	defaultMode = "positive"
	defaultSeed = 42
	defaultSort = "up"
)

// loadConfig reads the optional config file using Viper. A missing
// file is not an error: defaults still apply. When path is empty the
// working directory is searched for .gridfield.yaml.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeySide, defaultSide)
	v.SetDefault(cfgKeyMode, defaultMode)
	v.SetDefault(cfgKeySeed, defaultSeed)
	v.SetDefault(cfgKeySort, defaultSort)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && path == "" {
			return v, nil // optional file absent: defaults apply
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
