package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrConfigFileNotFound is returned if no config file is present and its availability is not skipped.
var ErrConfigFileNotFound = errors.New("config file not found")

// Node holds the configuration of the node.
var Node = viper.New()

// Load parses the command line and fetches the config values into Node from the environment and from a config
// file in the dir defined via --config-dir (or the current working dir if not set).
//
// It reads a single config file starting with "config" (can be changed via the --config flag) and ending with
// .json, .toml, .yaml or .yml.
func Load() (*viper.Viper, error) {
	flag.Parse()

	if err := Fetch(Node, flag.CommandLine, *configDirPath, *configName, *skipConfigAvailable); err != nil {
		return nil, err
	}

	return Node, nil
}

// Fetch binds the flags, the environment and the config file named configName in configDir to v. Flags that
// are set explicitly win over the environment, which wins over the config file, which wins over the flag
// defaults.
func Fetch(v *viper.Viper, flags *flag.FlagSet, configDir string, configName string, skipConfigAvailable bool) error {
	// replace dots with underscores in env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// read in ENV variables
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return errors.Errorf("failed to bind flags: %w", err)
	}

	v.SetConfigName(configName)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Errorf("failed to read config file: %w", err)
		}
		if !skipConfigAvailable {
			return errors.Errorf("no config file %s in %s: %w", configName, configDir, ErrConfigFileNotFound)
		}
	}

	return nil
}
