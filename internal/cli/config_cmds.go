package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hurufapp/huruf/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(), newConfigSetCmd(), newConfigGetCmd(), newConfigListCmd())
	return cmd
}

// configFilePath resolves the config file location for a command.
func configFilePath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

// newConfigInitCmd creates the config init command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configFilePath(cmd)
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if saveErr := config.New().Save(path); saveErr != nil {
				return saveErr
			}
			cmd.Printf("Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// newConfigSetCmd creates the config set command.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Example: `  huruf config set calculation.system mashriqi
  huruf config set output.format json
  huruf config set provider.offline true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath(cmd)
			if err != nil {
				return err
			}
			cfg, loadErr := config.Load(path)
			if loadErr != nil {
				return loadErr
			}

			if setErr := cfg.Set(args[0], args[1]); setErr != nil {
				return setErr
			}
			if saveErr := cfg.Save(path); saveErr != nil {
				return saveErr
			}
			cmd.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// newConfigGetCmd creates the config get command.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath(cmd)
			if err != nil {
				return err
			}
			cfg, loadErr := config.Load(path)
			if loadErr != nil {
				return loadErr
			}

			value, getErr := cfg.Get(args[0])
			if getErr != nil {
				return getErr
			}
			cmd.Println(value)
			return nil
		},
	}
}

// newConfigListCmd creates the config list command.
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all configuration values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configFilePath(cmd)
			if err != nil {
				return err
			}
			cfg, loadErr := config.Load(path)
			if loadErr != nil {
				return loadErr
			}

			for _, key := range config.Keys() {
				value, getErr := cfg.Get(key)
				if getErr != nil {
					continue
				}
				cmd.Printf("%s = %s\n", key, value)
			}
			return nil
		},
	}
}
