package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// ErrMissingIDs is returned by check --fail-missing when at least one
// eligible element lacks an id attribute.
var ErrMissingIDs = errors.New("elements without id attributes found")

// NewCheckCmd creates the check command.
//
// check is stamp's read-only sibling: it runs the same discovery, parsing,
// and filtering, but reports how many eligible elements lack an id instead
// of assigning one. Nothing is ever written.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Report elements that lack an id attribute, without writing",
		Long: `Check audits HTML files and reports how many eligible elements are missing
an id attribute. No file is modified.

This is useful as a CI gate: run with --fail-missing to get a non-zero exit
code whenever a template slips in without stable identifiers.

Examples:
  # Audit the current directory
  idstamp check

  # Audit a tree recursively and fail if anything is missing
  idstamp check --recursive --fail-missing ./templates

  # Machine-readable audit
  idstamp check --json ./templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheckCmd,
	}

	addStampFlags(cmd)

	cmd.Flags().Bool("fail-missing", false,
		"Exit with a non-zero status when any eligible element lacks an id")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.DryRun = true

	failMissing, err := cmd.Flags().GetBool("fail-missing")
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

	runReport, err := runStamp(ctx, cmd, cfg, logger)
	if err != nil {
		return err
	}

	if failMissing && runReport.IDsMissing > 0 {
		return fmt.Errorf("%w: %d element(s) across %d file(s)",
			ErrMissingIDs, runReport.IDsMissing, len(runReport.Files))
	}
	return nil
}
