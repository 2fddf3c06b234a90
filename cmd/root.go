package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xll-gen/embedgen/internal/config"
	"github.com/xll-gen/embedgen/internal/generator"
	"github.com/xll-gen/embedgen/internal/render"
	applog "github.com/xll-gen/embedgen/pkg/log"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

var (
	configPath string
	logLevel   string
	logFile    string

	// cfg holds the project defaults loaded before any subcommand runs.
	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "embedgen",
	Short: "Embed files into C++ headers as compile-time constants",
	Long: `embedgen reads a file and writes a C++ header that embeds its bytes as a
constexpr array or string literal, so the data is compiled into the binary
instead of being read at run time.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() != "init" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("%w: %w", generator.ErrInvalidArguments, err)
			}
			cfg = loaded
		}

		level, path := cfg.Logging.Level, cfg.Logging.Path
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			path = logFile
		}
		return applog.Init(path, level)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return applog.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, generator.ErrInvalidArguments) && cmd != nil {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
		os.Exit(exitCode(err))
	}
}

// Exit codes, one per error kind.
const (
	exitOK = iota
	exitFailure
	exitInvalidArguments
	exitInputRead
	exitOutputWrite
	exitEncoding
)

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, render.ErrEncoding):
		return exitEncoding
	case errors.Is(err, generator.ErrOutputWrite):
		return exitOutputWrite
	case errors.Is(err, generator.ErrInputRead):
		return exitInputRead
	case errors.Is(err, generator.ErrInvalidArguments), errors.Is(err, render.ErrInvalidOptions):
		return exitInvalidArguments
	default:
		return exitFailure
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default: ./"+config.FileName+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", generator.ErrInvalidArguments, err)
	})
}
