package cli

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/config"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/texttree"
)

// canvasFlags holds the [canvas] overrides shared by render, arrange and serve.
type canvasFlags struct {
	width       float32
	height      float32
	padding     float32
	labelHeight float32
	flow        string
	background  string
}

func (f *canvasFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&f.width, "width", 0, "canvas width (0 keeps the configured width)")
	cmd.Flags().Float32Var(&f.height, "height", 0, "canvas height")
	cmd.Flags().Float32Var(&f.padding, "padding", 0, "gap between slots")
	cmd.Flags().Float32Var(&f.labelHeight, "label-height", 0, "height reserved below labels")
	cmd.Flags().StringVar(&f.flow, "flow", "", "placement policy: row, column")
	cmd.Flags().StringVar(&f.background, "background", "", "background color (#rrggbb, #aarrggbb or 0xAARRGGBB)")
}

// apply layers the flags over cfg. Unset flags keep the configured value.
func (f *canvasFlags) apply(cfg config.Config) (config.Config, error) {
	overrides := config.Config{Canvas: config.Canvas{
		Width:       f.width,
		Height:      f.height,
		Padding:     f.padding,
		LabelHeight: f.labelHeight,
		Flow:        f.flow,
		Background:  f.background,
	}}
	if err := config.Apply(&cfg, overrides); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// =============================================================================
// Selection
// =============================================================================

// parseSelection resolves a selection expression against objects.
//
//	""          every object
//	"selected"  objects whose selected flag is set
//	"0,2,5-7"   explicit indices and inclusive ranges
//
// Indices are not range-checked here; batch operations report them.
func parseSelection(expr string, objects []object.Object) ([]int, error) {
	switch strings.TrimSpace(expr) {
	case "", "all":
		return object.All(objects), nil
	case "selected":
		return object.Selected(objects), nil
	}

	var indices []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "invalid index %q", part)
		}
		end := start
		if isRange {
			if end, err = strconv.Atoi(hi); err != nil || end < start {
				return nil, errors.New(errors.ErrCodeInvalidArgument, "invalid range %q", part)
			}
		}
		for i := start; i <= end; i++ {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// lookupKind resolves an attribute name.
func lookupKind(name string) (attr.Kind, error) {
	k, ok := attr.Lookup(name)
	if !ok {
		names := make([]string, 0, attr.Total)
		for _, d := range attr.Definitions() {
			names = append(names, d.Name)
		}
		return 0, errors.New(errors.ErrCodeInvalidArgument, "unknown attribute %q (one of: %s)", name, strings.Join(names, ", "))
	}
	return k, nil
}

// documentFormat picks the codec for path, preferring an explicit --format.
func documentFormat(path, explicit string) (texttree.Format, error) {
	if explicit != "" {
		return texttree.ParseFormat(explicit)
	}
	return texttree.FormatFromPath(path)
}

// outputPath returns output, or path with its extension replaced by ext.
func outputPath(path, output, ext string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
