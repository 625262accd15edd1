package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	cfgpkg "github.com/KaramelBytes/sheetstat/internal/config"
	"github.com/spf13/cobra"
)

const missingPathMessage = "Error: Missing Excel file path"

var (
	// errMissingPath is reported on stdout as plain text.
	errMissingPath = errors.New("missing spreadsheet path")
	// errReported means the failure envelope is already on stdout.
	errReported = errors.New("analysis failed")
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagNoPlot bool
	flagFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sheetstat <file>",
	Short: "Summarize a spreadsheet and render diagnostic charts as JSON",
	Long: `sheetstat reads an Excel workbook (first sheet) or a CSV/TSV file, computes
per-column statistics and renders histogram, box plot, bar plot and correlation
charts. The report is written to stdout as one JSON object with base64 PNG plots.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errMissingPath
		}
		if len(args) > 1 {
			return fmt.Errorf("accepts 1 arg, received %d", len(args))
		}
		return nil
	},
	RunE:          runAnalyze,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute is the entry point called by main.main()
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and maps the outcome to a process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errMissingPath):
		fmt.Fprintln(stdout, missingPathMessage)
	case errors.Is(err, errReported):
		// failure envelope already on stdout
		return 1
	default:
		fmt.Fprintln(stderr, "✗ Error:", err)
		fmt.Fprint(stderr, rootCmd.UsageString())
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sheetstat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.Flags().BoolVar(&flagNoPlot, "no-plots", false, "skip chart rendering (overrides generate_plots)")
	rootCmd.Flags().StringVar(&flagFormat, "format", cfgpkg.FormatJSON, "output format: json|content (overrides output_format)")
}

// loadConfig resolves file/env configuration and applies CLI overrides.
func loadConfig(cmd *cobra.Command) (*cfgpkg.Global, error) {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if debug {
		c.LogLevel = "debug"
	}
	if cmd.Flags().Changed("no-plots") && flagNoPlot {
		c.GeneratePlots = false
	}
	if cmd.Flags().Changed("format") {
		c.OutputFormat = flagFormat
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}
