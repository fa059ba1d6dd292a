package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BindConfig makes the command's flags readable through v.
//
// Each flag can also be set with an environment variable named after the
// prefix and the flag, e.g. GROWTHREPORT_INITIAL_SIZE for --initial-size,
// or in a YAML file. The file is the one named by --config, or else
// $HOME/.<prefix>.yaml if it exists. Flags set on the command line win
// over the environment, which wins over the file.
func BindConfig(cmd *cobra.Command, v *viper.Viper, envPrefix string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetConfigType("yaml")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		return nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}

	v.AddConfigPath(home)
	v.SetConfigName("." + strings.ToLower(envPrefix))

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}
