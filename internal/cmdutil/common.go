package cmdutil

import (
	"github.com/spf13/cobra"
	"github.com/trinity-tools/trinity-mail/internal/config"
	"github.com/trinity-tools/trinity-mail/internal/util"
)

// LoadConfigFromFlags loads configuration using the config flag from the command
func LoadConfigFromFlags(cmd *cobra.Command) (config.ConfigProvider, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	return config.LoadProvider(configPath)
}

// LoadConfigOrExit loads configuration and returns nil after logging if it fails
func LoadConfigOrExit(cmd *cobra.Command) config.ConfigProvider {
	cfg, err := LoadConfigFromFlags(cmd)
	if err != nil {
		util.LogError(util.ConfigError, "loading configuration", err)
		return nil
	}
	return cfg
}
