// Package cmd holds the root command shared by every staffview subcommand.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/staffview/internal/colors"
	"github.com/cristianoliveira/staffview/internal/config"
	"github.com/cristianoliveira/staffview/internal/logging"
	"github.com/cristianoliveira/staffview/internal/roster"
	"github.com/cristianoliveira/staffview/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Persistent flag values.
var (
	configPath string
	sourcePath string
	backend    string
	debugFlag  bool
	quietFlag  bool
	noColor    bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "staffview",
	Short: "Browse, filter and page through an employee roster.",
	Long: `Browse, filter and page through an employee roster.

Records are read from a JSON, TSV or SQLite source and never modified.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug("log shutdown:", err.Error())
		}
	},
}

// Execute runs the root command. ctx reaches every subcommand through cmd.Context.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/staffview/config.toml)")
	flags.StringVar(&sourcePath, "source", "", "Roster file to read (overrides source_path)")
	flags.StringVar(&backend, "backend", "", "Source backend: json, tsv, sqlite (default: from file extension)")
	flags.BoolVar(&debugFlag, "debug", false, "Print debug messages and log at debug level")
	flags.BoolVar(&quietFlag, "quiet", false, "Suppress informational output")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads configuration, applies persistent flags and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := os.Setenv(config.EnvPrefix+"CONFIG_PATH", configPath); err != nil {
			return fmt.Errorf("config path: %w", err)
		}
	}
	config.Load()

	if sourcePath != "" {
		config.Set("source_path", sourcePath)
		if backend == "" {
			config.Set("source_backend", roster.BackendForPath(sourcePath))
		}
	}
	if backend != "" {
		if !isBackend(backend) {
			return fmt.Errorf("%w: %q (must be one of %s)", roster.ErrUnsupportedBackend, backend, strings.Join(roster.Backends, ", "))
		}
		config.Set("source_backend", backend)
	}
	if cmd.Flags().Changed("debug") {
		config.Set("debug", fmt.Sprint(debugFlag))
	}
	if cmd.Flags().Changed("quiet") {
		config.Set("quiet", fmt.Sprint(quietFlag))
	}

	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	logging.Debug("command started", "command", cmd.CommandPath(), "args", len(args))
	return nil
}

// ColorEnabled reports whether output written to w should carry ANSI colors.
func ColorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isBackend(name string) bool {
	for _, b := range roster.Backends {
		if strings.EqualFold(name, b) {
			return true
		}
	}
	return false
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"list",
		"departments",
		"facets",
		"tui",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`staffview %s

%s

USAGE:
    staffview [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --config <path>     Config file
    --source <path>     Roster file to read
    --backend <name>    Source backend: json, tsv, sqlite
    --debug             Print debug messages
    --quiet             Suppress informational output
    --no-color          Disable colored output
    -h, --help          Show help message
`, version.String(), cmd.Short, strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
