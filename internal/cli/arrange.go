package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/io"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/pipeline"
)

// arrangeCommand creates the arrange command.
func (c *CLI) arrangeCommand() *cobra.Command {
	var flags canvasFlags

	cmd := &cobra.Command{
		Use:   "arrange [file]",
		Short: "Lay out a document and print object positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) runArrange(ctx context.Context, path string, flags *canvasFlags) error {
	cfg, err := flags.apply(c.Config)
	if err != nil {
		return err
	}
	layout, _ := cfg.Layout()

	objects, warnings := io.ReadFile(path)
	if objects == nil && warnings != nil {
		return warnings
	}
	pipeline.NewRunner(nil, nil, c.Logger).Arrange(ctx, objects, layout)

	fmt.Fprintln(stdout, StyleTitle.Render(path)+" "+StyleDim.Render(layout.String()))
	fmt.Fprintln(stdout, arrangeTable(objects))
	printWarnings(warnings)
	return nil
}

// arrangeTable renders one row per object with its slot on the canvas.
func arrangeTable(objects []object.Object) string {
	rows := make([][]string, len(objects))
	for i := range objects {
		o := &objects[i]
		r := o.ObjectRect
		rows[i] = []string{
			fmt.Sprint(i),
			o.Label,
			o.Effective(attr.Shape).Str(),
			fmt.Sprintf("%g", r.Left),
			fmt.Sprintf("%g", r.Top),
			fmt.Sprintf("%g", r.Width()),
			fmt.Sprintf("%g", r.Height()),
			o.Flags.String(),
		}
		if !o.IsVisible() {
			rows[i][2] = "hidden"
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Shape", "X", "Y", "W", "H", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row < len(objects) && !objects[row].IsVisible() {
				return StyleDim
			}
			if col >= 3 && col <= 6 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
