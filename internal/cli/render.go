package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/layout"
	"github.com/pktviz/pktviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple outputs)
	vizTypes   []string // visualization types: "grid", "nodelink"
	formats    []string // output formats: "svg", "png", "pdf", "json"
	style      string   // visual style: "classic" or "blueprint"
	bitsPerRow int      // bits per row before wrapping
	bitWidth   int      // pixel width per bit
	rowHeight  int      // pixel height per row
	paddingX   *int     // horizontal gap between blocks; nil when flag unset
	paddingY   *int     // vertical gap between rows; nil when flag unset
	hideBits   bool     // suppress bit index annotations
	detailed   bool     // bit counts in nodelink labels
	scale      float64  // PNG rasterization scale
	noCache    bool     // disable the render cache
	refresh    bool     // recompute even when cached
}

// newRenderCmd creates the render command for generating diagram images.
// It supports multiple visualization types (grid, nodelink) and output
// formats (SVG, PNG, PDF, JSON).
func newRenderCmd() *cobra.Command {
	var vizTypesStr, formatsStr string
	var paddingX, paddingY int
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file|url|-]",
		Short: "Render a packet diagram",
		Long: `Render a packet diagram to SVG, PNG, PDF, or JSON.

The argument is a diagram file, an http(s) URL, or "-" for stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			// An explicit --padding-x 0 is a valid setting, so only a
			// changed flag overrides the config file and defaults.
			if cmd.Flags().Changed("padding-x") {
				opts.paddingX = &paddingX
			}
			if cmd.Flags().Changed("padding-y") {
				opts.paddingY = &paddingY
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			for _, v := range opts.vizTypes {
				if err := pipeline.ValidateVizType(v); err != nil {
					return err
				}
			}
			if opts.style != "" {
				if err := pipeline.ValidateStyle(opts.style); err != nil {
					return err
				}
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): grid (default), nodelink (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: classic (default), blueprint")
	cmd.Flags().IntVar(&opts.bitsPerRow, "bits-per-row", 0, fmt.Sprintf("bits per row (default %d)", layout.DefaultBitsPerRow))
	cmd.Flags().IntVar(&opts.bitWidth, "bit-width", 0, fmt.Sprintf("pixel width per bit (default %d)", layout.DefaultBitWidth))
	cmd.Flags().IntVar(&opts.rowHeight, "row-height", 0, fmt.Sprintf("pixel height per row (default %d)", layout.DefaultRowHeight))
	cmd.Flags().IntVar(&paddingX, "padding-x", layout.DefaultPaddingX, "horizontal gap between blocks")
	cmd.Flags().IntVar(&paddingY, "padding-y", layout.DefaultPaddingY, "vertical gap between rows")
	cmd.Flags().BoolVar(&opts.hideBits, "hide-bits", false, "hide bit index annotations")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show bit counts in node labels (nodelink)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG rasterization scale (default 2)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// parseVizTypes parses the --type flag. If empty, defaults to ["grid"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{pipeline.VizTypeGrid}
	}
	return strings.Split(s, ",")
}

// parseFormats parses the --format flag. If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// pipelineOptions builds pipeline options for one viz type.
func (o *renderOpts) pipelineOptions(source, sourcePath, vizType, style string) pipeline.Options {
	opts := pipeline.Options{
		Source:     source,
		SourcePath: sourcePath,
		Refresh:    o.refresh,
		BitsPerRow: o.bitsPerRow,
		BitWidth:   o.bitWidth,
		RowHeight:  o.rowHeight,
		PaddingX:   o.paddingX,
		PaddingY:   o.paddingY,
		VizType:    vizType,
		Formats:    o.formats,
		Style:      style,
		Scale:      o.scale,
		Detailed:   o.detailed,
	}
	if o.hideBits {
		opts.ShowBits = layout.ShowBitsPtr(false)
	}
	return opts
}

// resolveInput splits the input argument into an inline source (stdin) or a
// file/URL path.
func resolveInput(input string) (source, sourcePath string, err error) {
	if input != "-" {
		return "", input, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "", nil
}

// runRender executes the pipeline for each requested viz type and writes
// the resulting artifacts.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	cfg := loadConfig()

	style := opts.style
	if style == "" {
		style = cfg.Style
	}

	source, sourcePath, err := resolveInput(input)
	if err != nil {
		return err
	}

	c := newCache(ctx, cfg, opts.noCache)
	runner := pipeline.NewRunner(c, nil, logger)
	defer runner.Close()

	prog := newProgress(logger)
	written := 0

	for _, vizType := range opts.vizTypes {
		pOpts := opts.pipelineOptions(source, sourcePath, vizType, style)
		pOpts.BitsPerRow = firstNonZero(pOpts.BitsPerRow, cfg.Layout.BitsPerRow)
		pOpts.BitWidth = firstNonZero(pOpts.BitWidth, cfg.Layout.BitWidth)
		pOpts.RowHeight = firstNonZero(pOpts.RowHeight, cfg.Layout.RowHeight)
		if pOpts.PaddingX == nil {
			pOpts.PaddingX = cfg.Layout.PaddingX
		}
		if pOpts.PaddingY == nil {
			pOpts.PaddingY = cfg.Layout.PaddingY
		}
		if pOpts.ShowBits == nil {
			pOpts.ShowBits = cfg.Layout.ShowBits
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s view", vizType))
		spinner.Start()

		result, err := runner.Execute(ctx, pOpts)
		spinner.Stop()
		if err != nil {
			return err
		}

		printStats(result.Stats.FieldCount, result.Stats.TotalBits, result.Stats.WordCount, result.CacheInfo.RenderHit)

		for _, format := range opts.formats {
			path := outputPath(opts.output, input, vizType, format, len(opts.vizTypes) > 1)
			if err := errors.ValidateOutputPath(path); err != nil {
				return err
			}
			if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printFile(path)
			written++
		}
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", written))
	printSuccess("Done")
	return nil
}

// firstNonZero returns a if it is nonzero, otherwise b.
func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}

// outputPath derives the output file path for one viz type/format pair.
// If output is empty, the path is derived from the input file name. When
// multiple viz types are requested, the type is appended to the base name.
func outputPath(output, input, vizType, format string, multiType bool) string {
	base := basePath(output, input)
	if multiType {
		return fmt.Sprintf("%s_%s.%s", base, vizType, format)
	}
	return fmt.Sprintf("%s.%s", base, format)
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input (and any URL query
// or directory parts). If output has a format extension, that is stripped.
func basePath(output, input string) string {
	if output == "" {
		name := filepath.Base(strings.TrimSuffix(input, "/"))
		if name == "-" || name == "" || name == "." {
			name = "diagram"
		}
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
