package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gui-factory/internal/app"
	"gui-factory/internal/config"
	"gui-factory/internal/gui"
	"gui-factory/internal/logger"
)

// Global flags shared by every command.
var (
	debug      bool   // --debug: verbose logging on stderr
	noColor    bool   // --no-color: plain output even on a terminal
	configPath string // --config/-c: optional YAML config file
)

// rootCmd prompts for a platform and renders its widget family.
var rootCmd = &cobra.Command{
	Use:   "gui-factory",
	Short: "Render a platform-consistent family of GUI widgets",
	Long:  longHelp(),
	Args:  cobra.NoArgs,

	// PersistentPreRun is a hook that runs before any subcommand.
	// It merges the config file with the flags and sets up logging.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Warn("[WARN] Ignoring config: %v\n", err)
		} else if configPath != "" {
			logger.Info("[INFO] Loaded config from %s\n", configPath)
		}

		var o config.Overrides
		if cmd.Flags().Changed("debug") {
			o.Debug = &debug
		}
		if cmd.Flags().Changed("no-color") {
			o.NoColor = &noColor
		}
		cfg = cfg.Apply(o)

		logger.Init(cfg.Debug)
		if cfg.NoColor {
			logger.SetNoColor(true)
		}
		logger.Debug("[DEBUG] Effective config: %+v\n", cfg)
	},

	// Run never reports failure, so the process exits with status zero
	// whether the platform was valid or not.
	Run: func(cmd *cobra.Command, args []string) {
		app.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	registerFlags()
	rootCmd.AddCommand(platformsCmd)
}

// registerFlags binds the global flags to their default values.
func registerFlags() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to an optional YAML configuration file")
}

// longHelp names every registered platform.
func longHelp() string {
	names := make([]string, 0, len(gui.Platforms()))
	for _, p := range gui.Platforms() {
		names = append(names, p.String())
	}
	return fmt.Sprintf(`gui-factory reads a platform name (%s) from standard input,
selects the factory for that platform and renders the button and checkbox it creates.`, strings.Join(names, " or "))
}

// Execute runs the root command.
// Errors are ignored here with `_ =` since Cobra already prints them.
func Execute() {
	_ = rootCmd.Execute()
}
