package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/config"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/keybinds"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/logging"
	"github.com/PanaviaTheSecondComing/awp.gg-ui/internal/tui"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "awp",
	Short: "AWP - tabbed script editor",
	Long: `AWP is a tabbed script editor for the terminal.

Scripts live in memory only. Execute, Clear, Open and Save are shown in the
toolbar but do nothing in this build.

Configuration is read from ~/.awp/config.yaml and AWP_* environment variables.
Keybindings are read from ~/.awp/keybinds.jsonc.

Examples:
  awp                          # Start the editor
  awp --debug                  # Start with debug logging
  awp config                   # Print the effective configuration
  awp keybinds export -o ~/.awp/keybinds.jsonc
  awp keybinds validate`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runTUI(cfg)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage keybindings",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the default keybindings as commented JSONC",
	Long: `Write the default keybindings as commented JSONC.

Without --output the document is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagExportOutput == "" {
			data, err := keybinds.MarshalJSONC(keybinds.NewDefaultRegistry())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		path := config.ExpandPath(flagExportOutput)
		if _, err := os.Stat(path); err == nil && !flagExportForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := keybinds.WriteDefaults(path); err != nil {
			return fmt.Errorf("failed to write keybinds: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default keybindings to %s\n", path)
		return nil
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a keybindings file for errors and conflicts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = config.ExpandPath(args[0])
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.Keybinds.File
		}

		kbConfig, err := keybinds.LoadConfig(path)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "No keybindings file at %s, defaults are used\n", path)
			return nil
		}
		if err != nil {
			return err
		}

		result := keybinds.NewValidator().ValidateConfig(kbConfig)
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
		if result.HasErrors() {
			return fmt.Errorf("%s has %d error(s)", path, len(result.Errors))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "awp %s\n", version)
	},
}

// Flags
var (
	flagConfig       string
	flagDebug        bool
	flagExportOutput string
	flagExportForce  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default ~/.awp/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	keybindsExportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file path")
	keybindsExportCmd.Flags().BoolVarP(&flagExportForce, "force", "f", false, "Overwrite an existing file")

	keybindsCmd.AddCommand(keybindsExportCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig initializes ~/.awp and loads the configuration
func loadConfig() (*config.Config, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// runTUI wires logging and keybindings and starts the interactive editor
func runTUI(cfg *config.Config) error {
	logger, closer, err := logging.New(logging.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	registry, err := keybinds.LoadOrDefault(cfg.Keybinds.File)
	if err != nil {
		return err
	}
	if result := keybinds.NewValidator().ValidateRegistry(registry); result.HasWarnings() {
		for _, w := range result.Warnings {
			logger.Warn("keybinding", "context", w.Context, "key", w.Key, "message", w.Message)
		}
	}

	logger.Info("starting", "version", version, "config", config.ConfigFile)

	return tui.Run(tui.Options{
		Config:   cfg,
		Keybinds: registry,
		Logger:   logger,
		Version:  version,
	})
}
