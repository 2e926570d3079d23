package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ortobahn/ortobahn/internal/config"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

var (
	cfgFile    string
	cfgReadErr error
)

var rootCmd = &cobra.Command{
	Use:   "ortobahn",
	Short: "ortobahn - client and content management for small agencies",
	Long: `ortobahn is a single-binary webapp for managing clients, posting
strategies and scheduled posts, with Stripe subscription billing and
automatic timestamped database backups.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ortobahn.toml)")
}

func initConfig() {
	logger.GetLogger().ConfigureFromEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ortobahn")
		viper.SetConfigType("toml")

		// Current directory (highest priority)
		viper.AddConfigPath(".")

		// User config directory
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(userConfigDir + "/ortobahn")
		}

		// System-wide config directory
		viper.AddConfigPath("/etc/ortobahn")
	}

	viper.AutomaticEnv()

	// A missing config file is only an error for the commands that need
	// one; version and help run without it.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		cfgReadErr = fmt.Errorf("could not read config file %s: %w", cfgFile, err)
	} else {
		cfgReadErr = fmt.Errorf("config file not found, specify with --config or put ortobahn.toml in the current directory")
	}
}

// loadConfig surfaces a config file read failure before decoding, for the
// commands that actually need configuration.
func loadConfig() (*config.Config, error) {
	if cfgReadErr != nil {
		return nil, cfgReadErr
	}
	return config.Load()
}
