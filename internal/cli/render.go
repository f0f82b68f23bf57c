package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file; "-" writes to stdout
	format    string // input codec; empty picks by extension
	canvas    canvasFlags
	selection bool // outline selected objects
	noCache   bool // disable the render cache
	refresh   bool // ignore cached renders
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to SVG",
		Long: `Render loads a document, arranges its objects on the canvas and writes
an SVG. Renders are cached by document content and canvas settings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .svg extension, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: yaml, json, toml, msgpack (default: by extension)")
	cmd.Flags().BoolVar(&opts.selection, "selection", false, "outline selected objects")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	opts.canvas.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	format, err := documentFormat(path, opts.format)
	if err != nil {
		return err
	}
	cfg, err := opts.canvas.apply(c.Config)
	if err != nil {
		return err
	}
	layout, _ := cfg.Layout()
	background, _ := cfg.Background()

	doc, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	runner, err := c.newRunner(opts.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, stderr, "Rendering "+path)
	if !c.verbose {
		spin.Start()
	}
	result, err := runner.Render(ctx, doc, pipeline.Options{
		Format:     format,
		Layout:     layout,
		Background: background,
		Selection:  opts.selection,
		Refresh:    opts.refresh,
		TTL:        cfg.Cache.TTL,
	})
	if err != nil {
		spin.StopWithError("Render failed")
		return err
	}
	spin.Stop()

	out := outputPath(path, opts.output, ".svg")
	if out == "-" {
		_, err := stdout.Write(result.SVG)
		return err
	}
	if err := os.WriteFile(out, result.SVG, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", out)
	}
	prog.done("Rendered " + path)

	printSuccess("Rendered %s", path)
	printStats(result.Stats.ObjectCount, len(result.SVG), result.CacheHit)
	printWarnings(result.Warnings)
	printFile(out)
	return nil
}
