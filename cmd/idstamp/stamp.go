package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idstamp-dev/idstamp/internal/config"
	intlog "github.com/idstamp-dev/idstamp/internal/log"
	"github.com/idstamp-dev/idstamp/internal/model"
	"github.com/idstamp-dev/idstamp/internal/pipeline"
	"github.com/idstamp-dev/idstamp/internal/report"
	"github.com/idstamp-dev/idstamp/internal/stamp"
	"github.com/idstamp-dev/idstamp/internal/walker"
)

// NewStampCmd creates the stamp command.
func NewStampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamp [path]",
		Short: "Assign unique id attributes to HTML elements in place",
		Long: `Stamp searches the given directory for HTML files and rewrites them so that
every eligible element carries a unique id attribute.

Elements that already have an id keep it, and generated values never collide
with hand-authored ones. By default ids are random UUIDs; --sequential
switches to a deterministic counter for reproducible output.

Examples:
  # Stamp files in the current directory
  idstamp stamp

  # Stamp a tree recursively with a prefix
  idstamp stamp --recursive --prefix "qa-" ./templates

  # Only stamp form controls
  idstamp stamp --include input,select,textarea,button ./templates

  # Never stamp list items, even if included elsewhere
  idstamp stamp --exclude li ./templates

  # Preview without writing anything
  idstamp stamp --dry-run ./templates

  # Emit a JSON run report to a file
  idstamp stamp --json -o report.json ./templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStampCmd,
	}

	addStampFlags(cmd)

	cmd.Flags().BoolP("dry-run", "n", false,
		"Audit files without writing anything back")

	return cmd
}

// addStampFlags registers the flags shared by the stamp and check commands.
func addStampFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("recursive", "r", config.DefaultRecursive,
		"Search subdirectories recursively")
	cmd.Flags().StringSliceP("extensions", "x", config.DefaultExtensions(),
		"File extensions that identify documents to process")
	cmd.Flags().StringSliceP("include", "i", nil,
		"Only stamp the listed tags (empty means every tag)")
	cmd.Flags().StringSliceP("exclude", "e", config.DefaultExcludeTags(),
		"Never stamp the listed tags (wins over --include)")
	cmd.Flags().String("prefix", "",
		"Prefix prepended to every generated id")
	cmd.Flags().String("suffix", "",
		"Suffix appended to every generated id")
	cmd.Flags().String("encoding", config.DefaultEncoding,
		"Character encoding used to read and write files")
	cmd.Flags().String("scope", string(config.ScopeRun),
		`Uniqueness scope: "run" (across all files) or "file" (per file)`)
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of files processed concurrently")
	cmd.Flags().Bool("sequential", false,
		"Generate sequential ids instead of random UUIDs")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .idstamp in current or home directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON run report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown run report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the run report to the specified file path")
}

// runStampCmd executes the stamp command.
func runStampCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	cfg.DryRun, err = cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	_, err = runStamp(ctx, cmd, cfg, logger)
	return err
}

// signalContext returns a context cancelled on SIGINT or SIGTERM so that a
// run stops at the next file boundary instead of mid-write.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// buildConfig creates a Config from defaults, the optional .idstamp file,
// and cobra command flags, in that order of increasing precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configPathFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPathFlag

	// Load the config file first so that explicitly set flags win below.
	// If the user explicitly specified a config file path, error if it is
	// missing; otherwise a missing file just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if configPathFlag != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPathFlag)
	}

	// Flags override file values only when actually set on the command line.
	flags := cmd.Flags()
	if flags.Changed("recursive") {
		if cfg.Recursive, err = flags.GetBool("recursive"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("extensions") {
		if cfg.Extensions, err = flags.GetStringSlice("extensions"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("include") {
		if cfg.IncludeTags, err = flags.GetStringSlice("include"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("exclude") {
		if cfg.ExcludeTags, err = flags.GetStringSlice("exclude"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("prefix") {
		if cfg.Prefix, err = flags.GetString("prefix"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("suffix") {
		if cfg.Suffix, err = flags.GetString("suffix"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("scope") {
		scope, err := flags.GetString("scope")
		if err != nil {
			return nil, err
		}
		cfg.Scope = config.Scope(scope)
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}

	cfg.Sequential, err = flags.GetBool("sequential")
	if err != nil {
		return nil, err
	}
	cfg.JSONReport, err = flags.GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = flags.GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// The positional argument always wins over --config and defaults.
	if len(args) > 0 {
		cfg.Path = args[0]
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on the configuration.
// Path-valued attributes are logged relative to the run's base directory.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(intlog.NewPathHandler(handler, cfg.Path))
}

// runStamp executes a stamping (or dry-run) pass over the configured tree
// and returns the run report.
func runStamp(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*model.RunReport, error) {
	stamper, err := newStamper(cfg)
	if err != nil {
		return nil, err
	}

	paths, err := walker.New(cfg.Extensions, cfg.Recursive).Find(cfg.Path)
	if err != nil {
		return nil, err
	}

	logger.Info("starting run",
		"path", cfg.Path,
		"files", len(paths),
		"scope", string(cfg.Scope),
		"dryRun", cfg.DryRun,
	)

	runReport := model.NewRunReport(cfg.Path, string(cfg.Scope), cfg.DryRun)

	if len(paths) == 0 {
		logger.Warn("no matching files found",
			"path", cfg.Path,
			"extensions", fmt.Sprint(cfg.Extensions),
		)
	}

	p := pipeline.NewFilePipeline(cfg, stamper, pipeline.NewRegistrySource(cfg.Scope),
		pipeline.WithLogger(logger))
	bp := pipeline.NewBatchProcessor(p, cfg.Path,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	results, procErr := bp.Process(ctx, paths)
	for _, fr := range results {
		runReport.Add(fr)
	}
	runReport.Finish()

	if err := writeReport(cmd, cfg, runReport); err != nil {
		return runReport, err
	}

	if procErr != nil {
		return runReport, procErr
	}
	if runReport.FilesFailed > 0 {
		return runReport, fmt.Errorf("%d of %d file(s) failed", runReport.FilesFailed, len(runReport.Files))
	}
	return runReport, nil
}

// newStamper assembles the engine from the configuration.
func newStamper(cfg *config.Config) (*stamp.Stamper, error) {
	var gen stamp.Generator = stamp.UUIDGenerator{}
	if cfg.Sequential {
		gen = stamp.NewSequentialGenerator("")
	}

	assigner, err := stamp.NewAssigner(gen, stamp.WithAffix(cfg.Prefix, cfg.Suffix))
	if err != nil {
		return nil, err
	}

	filter := stamp.NewFilter(cfg.IncludeTags, cfg.ExcludeTags)
	return stamp.NewStamper(filter, assigner), nil
}

// writeReport renders the run report in the configured format to stdout or
// to the configured report file.
func writeReport(cmd *cobra.Command, cfg *config.Config, runReport *model.RunReport) error {
	out := cmd.OutOrStdout()

	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(out)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(out)
	default:
		w = report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose))
	}

	if _, err := w.Write(runReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
