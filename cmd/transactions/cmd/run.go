package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matheusgomes28/transactions/config"
	"github.com/matheusgomes28/transactions/engine"
	"github.com/matheusgomes28/transactions/process"
	"github.com/matheusgomes28/transactions/report"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Process a CSV transaction file and report final balances",
	Long: `Read a CSV transaction file, apply every record in order and write the
final per-client account report as CSV.

The report goes to stdout (or --out); diagnostics about skipped records and
rejected transactions go to stderr. Pass "-" to read transactions from
stdin.

Example:
  transactions run transactions.csv > accounts.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var (
	runConfigPath string
	runOut        string
	runPrecision  int
	runLogLevel   string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to a YAML or JSON config file")
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "report output path (default stdout)")
	runCmd.Flags().IntVar(&runPrecision, "precision", -1, "decimal places for amounts, -1 for shortest")
	runCmd.Flags().StringVar(&runLogLevel, "log-level", "warn", "log level: debug, info, warn, error")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags take precedence over the config file.
	if cmd.Flags().Changed("out") {
		cfg.Output = runOut
	}
	if cmd.Flags().Changed("precision") {
		cfg.Report.Precision = runPrecision
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = runLogLevel
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("missing input: pass a file argument or set input in the config")
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", cfg.Log.Level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "transactions", Level: level})

	in, err := openInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	runner := process.Runner{Engine: engine.New(), Log: logger}
	if _, err := runner.Run(in); err != nil {
		return err
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer closeOut()

	if err := report.Write(out, runner.Engine.Accounts(), report.Options{Precision: cfg.Report.Precision}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
