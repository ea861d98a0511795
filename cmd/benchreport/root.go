package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"benchreport/internal/config"
	"benchreport/internal/report"
	"benchreport/internal/results"
	"benchreport/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	errFileNotFound = errors.New("file not found")
	errNoResults    = errors.New("no results found in CSV")
)

var exit = os.Exit

var (
	cfgFile     string
	markdownOut string
	previewMode bool
	metricsOut  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchreport <results.csv>",
	Short: "Summarize and compare benchmark results",
	Long: `benchreport reads a CSV file of benchmark measurements (build, rebuild,
startup, idle and load-test metrics per configuration), prints summary tables
and the percentage difference of every configuration against a baseline.

The CSV needs a header with at least the Config and Test columns.`,
	Example: `  benchreport results.csv
  benchreport results.csv -m REPORT.md
  benchreport results.csv --baseline native --metrics-out bench.prom`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runReport,
}

// Execute runs the root command and converts failures into exit code 1.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", report.Icons.Failure, err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchreport.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag(config.KeyNoColor, rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.Flags().StringVarP(&markdownOut, "markdown", "m", "", "Write a Markdown report to `OUTPUT`")
	rootCmd.Flags().BoolVar(&previewMode, "preview", false, "Render the Markdown report in the terminal")
	rootCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write values and deltas as a Prometheus textfile")
	rootCmd.Flags().String("baseline", config.DefaultBaseline, "Configuration to compare against")

	viper.BindPFlag(config.KeyBaseline, rootCmd.Flags().Lookup("baseline"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	telemetry.InitLogger(viper.GetBool(config.KeyVerbose), viper.GetString(config.KeyLogFile))
	report.SetColor(!viper.GetBool(config.KeyNoColor))
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", errFileNotFound, path)
		}
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	rs, err := results.Load(path)
	if err != nil {
		return err
	}
	if rs.Len() == 0 {
		return errNoResults
	}

	out := cmd.OutOrStdout()
	baseline := viper.GetString(config.KeyBaseline)
	telemetry.LogDebug("Generating reports", "configs", len(rs), "baseline", baseline)

	report.PrintSummary(out, rs)
	report.PrintComparison(out, rs, baseline)

	if markdownOut != "" {
		if err := report.WriteMarkdown(out, rs, markdownOut); err != nil {
			telemetry.LogError("Markdown report failed", err, "path", markdownOut)
			return err
		}
	}

	if previewMode {
		if err := report.Preview(out, rs); err != nil {
			telemetry.LogError("Markdown preview failed", err)
			return err
		}
	}

	if metricsOut != "" {
		if err := report.ExportMetrics(rs, baseline, metricsOut); err != nil {
			telemetry.LogError("Metrics export failed", err, "path", metricsOut)
			return err
		}
		fmt.Fprintf(out, "%s Metrics written: %s\n", report.Icons.Success, metricsOut)
	}

	return nil
}
