package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/config"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Inspect and change the configuration",
	Subcommands: []*cobra.Command{
		configShowCmd,
		configGetCmd,
		configSetCmd,
	},
}.Build()

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cfg, err := config.Load(homeDir, dotenvFile)
		if err != nil {
			return err
		}
		return runConfigShow(cmd, cfg)
	},
}.Build()

var configGetCmd = LeafCommand{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cfg, err := config.Load(homeDir, dotenvFile)
		if err != nil {
			return err
		}
		return runConfigGet(cmd, cfg, args[0])
	},
}.Build()

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Store a configuration value in config.json",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigShow(cmd *cobra.Command, cfg config.Config) error {
	w := cmd.OutOrStdout()
	for _, key := range config.Keys() {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if key == "secret" {
			value = strings.Repeat("*", len(value))
		}
		if value == "" {
			value = Silent("(default)")
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", Info(padRight(key, 16)), Text(value))
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, cfg config.Config, key string) error {
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// runConfigSet changes config.json only; environment overrides still win.
func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("set"), Primary(key))
	return nil
}
