package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/appengine-ltd/gps-sort/internal/catalog"
	"github.com/appengine-ltd/gps-sort/internal/oracle"
	"github.com/appengine-ltd/gps-sort/internal/output"
	"github.com/appengine-ltd/gps-sort/internal/pipeline"
)

// version, commit, date are overridden via -ldflags on release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbose     bool
	catalogPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gps-sort <input_file> <output_file>",
		Short: "Sort Space Engineers GPS coordinates into resource clusters",
		Long: `gps-sort reads Space Engineers GPS coordinates from a file, removes
near-duplicate markers (asking which to keep), groups resources under
nearby Cluster markers, normalizes resource names against the ore
vocabulary, and writes the sorted list back out in importable form.`,
		Version: fmt.Sprintf("%s (%s) %s", version, commit, date),
		Args:    cobra.ExactArgs(2),
		RunE:    run,
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML file overriding the sector table and ore vocabulary")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	cmd.SilenceUsage = true

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	if info, err := os.Stat(inputPath); err != nil || info.IsDir() {
		_ = cmd.Usage()
		return fmt.Errorf("input file does not exist: %s", inputPath)
	}
	if _, err := os.Stat(outputPath); err == nil {
		_ = cmd.Usage()
		return fmt.Errorf("output file already exists: %s", outputPath)
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cat := catalog.Default()
	if catalogPath != "" {
		if cat, err = catalog.Load(catalogPath); err != nil {
			return err
		}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	p := pipeline.New(cat, oracle.Stdio(), logger, pipeline.DefaultConfig())
	coords, err := p.ReadCoordinates(in)
	if err != nil {
		return err
	}
	clusters := p.Process(coords)

	// The output file is only created once processing is done, so a
	// fatal condition mid-run leaves nothing behind.
	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := output.Write(out, clusters, cat, time.Now()); err != nil {
		out.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	fmt.Printf("Coordinates output to %s\n", outputPath)
	return nil
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr so
// the interactive prompts on stdout stay clean.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
