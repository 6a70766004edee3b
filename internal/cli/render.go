package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KuroiKoyani/pareto-chart/pkg/pipeline"
)

// renderCommand creates the render command for producing chart artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr  string
		output      string
		noCache     bool
		mongoFilter string
	)
	opts := pipeline.Options{
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a Pareto chart to SVG, PNG, or JSON",
		Long: `Render a Pareto chart to SVG, PNG, or JSON.

The render command reads a tabular dataset (a CSV, JSON, or XLSX file, or a
MongoDB collection via the --mongo-* flags), computes the cumulative series,
projects bar and line geometry, and writes one artifact per requested format.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if mongoFilter != "" {
				if err := json.Unmarshal([]byte(mongoFilter), &opts.MongoFilter); err != nil {
					return fmt.Errorf("parse --mongo-filter: %w", err)
				}
			}
			if noCache && opts.Refresh {
				printWarning("--refresh has no effect with --no-cache")
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "recompute stages even when cached")

	// Dataset flags
	cmd.Flags().StringVar(&opts.Category, "category", "", "category column (default: first column)")
	cmd.Flags().StringVar(&opts.Value, "value", "", "value column (default: second column)")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "worksheet for XLSX input (default: first sheet)")

	// MongoDB flags
	cmd.Flags().StringVar(&opts.MongoURI, "mongo-uri", "", "MongoDB connection URI")
	cmd.Flags().StringVar(&opts.MongoDatabase, "mongo-database", "", "MongoDB database name")
	cmd.Flags().StringVar(&opts.MongoCollection, "mongo-collection", "", "MongoDB collection name")
	cmd.Flags().StringVar(&mongoFilter, "mongo-filter", "", "MongoDB find filter as JSON")
	cmd.Flags().Int64Var(&opts.MongoLimit, "mongo-limit", 0, "maximum documents to read (0 = unlimited)")

	// Chart flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "viewport height")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "TOML theme file")
	cmd.Flags().BoolVar(&opts.HighContrast, "high-contrast", opts.HighContrast, "outline bars for high-contrast output")

	return cmd
}

// runRender executes the full pipeline and writes the requested artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.Source()))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Path,
		output:    output,
		stats:     result.Stats,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	if opts.Path != "" {
		printNewline()
		printNextStep("Preview", appName+" view "+opts.Path)
	}
	return nil
}

// artifactWriteParams bundles everything writeArtifacts needs to emit files
// and report the result.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	stats     pipeline.Stats
	cacheHit  bool
}

// writeArtifacts writes one file per requested format and prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.stats.PointCount, p.stats.Total, p.cacheHit)
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; MongoDB sources
// have no input path and fall back to "chart".
// If output carries a known format extension (.svg, .png, .json), that
// extension is stripped so each format appends its own.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return "chart"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
