package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matchkit/internal/config"
)

// flagKeys maps CLI flags onto viper keys. Only flags the running command
// actually defines get bound.
var flagKeys = map[string]string{
	"log-level":         "log_level",
	"check":             "check_invariants",
	"input-format":      "input_format",
	"output":            "output",
	"max-augmentations": "max_augmentations",
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchkit",
		Short:         "Maximum-cardinality matching for undirected graphs",
		Long:          "matchkit finds maximum matchings with Edmonds' blossom algorithm and generates test graphs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .matchkit.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARNING, ERROR (default INFO)")

	root.AddCommand(newMatchCmd(), newGenerateCmd())

	return root
}

func initConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".matchkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MATCHKIT")
	viper.AutomaticEnv()
	config.SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must load.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind --%s", flag)
			}
		}
	}

	return nil
}
