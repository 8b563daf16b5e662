package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/ecmerge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ecmerge configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s\n", path)
			return nil
		}

		cfg := config.Default()
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config file created at %s\n", path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (limit, format, color, prefer)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile()
		if err != nil {
			// If no config file, start from defaults
			cfg = config.Default()
		}

		if err := config.SetField(&cfg, args[0], args[1]); err != nil {
			return err
		}

		// Check the value against the effective config: zero values in the
		// file mean "use the default" and would otherwise hide it.
		effective := cfg.WithDefaults()
		if err := config.SetField(&effective, args[0], args[1]); err != nil {
			return err
		}
		if err := effective.Validate(); err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}

		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}
