package main

import (
	"fmt"
	"os"

	"edutool/internal/calculator"
	"edutool/internal/config"
	"edutool/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	modeFlag   string

	// Effective configuration, loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "edutool",
	Short: "edutool - classroom calculator (basic, scientific, WAEC)",
	Long: `edutool is the calculator of the education suite.

It evaluates keypad expressions with a safe parser (no dynamic code), in degrees for
trigonometry, and keeps a short history of results.

Run without arguments to start the interactive keypad.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		// The keypad owns the terminal; only subcommands log to stderr
		if err := logging.Initialize(cfg.Logging, isInteractive(cmd)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Get(logging.CategoryBoot).Debug("config loaded",
			zap.String("path", resolvedConfigPath()),
			zap.Stringer("mode", cfg.Mode()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the keypad
		return runInteractive(cmd)
	},
}

// isInteractive reports whether cmd is the bare root command, which runs the keypad.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent()
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies the global flags on top of it.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if modeFlag != "" {
		m, err := calculator.ParseMode(modeFlag)
		if err != nil {
			return nil, err
		}
		c.Calculator.DefaultMode = string(m)
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// newCalculator builds a Calculator from the effective configuration.
func newCalculator() *calculator.Calculator {
	return calculator.New(
		calculator.WithMode(cfg.Mode()),
		calculator.WithHistorySize(cfg.Calculator.HistorySize),
		calculator.WithLogger(logging.Get(logging.CategoryCalc)),
	)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $HOME/.edutool/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "", "Keypad mode: basic, scientific or waec")

	// Eval flags
	evalCmd.Flags().BoolVar(&evalHistory, "history", false, "Print the history after evaluating")
	evalCmd.Flags().BoolVar(&evalTree, "tree", false, "Print the parsed expression tree")

	// Config subcommands
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	// Add commands to root
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(buttonsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
