package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/io"
	"github.com/matzehuels/drawset/pkg/object"
)

// mixedValue is shown when the selected objects disagree on a value.
const mixedValue = "(mixed)"

// loadDocument reads path and prints any value warnings.
func loadDocument(path string) ([]object.Object, error) {
	objects, err := io.ReadFile(path)
	if objects == nil && err != nil {
		return nil, err
	}
	printWarnings(err)
	return objects, nil
}

// =============================================================================
// get
// =============================================================================

func (c *CLI) getCommand() *cobra.Command {
	var selection string

	cmd := &cobra.Command{
		Use:   "get [file] [attribute]",
		Short: "Print an attribute value across selected objects",
		Long: `Get prints the value shared by every selected object. Objects that
disagree print ` + mixedValue + `; unset slots print the attribute default.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[1])
			if err != nil {
				return err
			}
			objects, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			indices, err := parseSelection(selection, objects)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, object.GetStringValue(objects, indices, k, mixedValue))
			return nil
		},
	}
	cmd.Flags().StringVarP(&selection, "select", "s", "", "objects to read: all, selected, or indices like 0,2,4-6")
	return cmd
}

// =============================================================================
// set
// =============================================================================

func (c *CLI) setCommand() *cobra.Command {
	var selection, output string

	cmd := &cobra.Command{
		Use:   "set [file] [attribute] [value]",
		Short: "Set an attribute on selected objects",
		Long: `Set parses value once per selected object and writes the document
back. An empty value resets the attribute to its default. Objects that
reject the value are reported and their slot is reset.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name, value := args[0], args[1], args[2]
			k, err := lookupKind(name)
			if err != nil {
				return err
			}
			objects, err := loadDocument(path)
			if err != nil {
				return err
			}
			indices, err := parseSelection(selection, objects)
			if err != nil {
				return err
			}

			setErr := object.Set(objects, indices, k, value)
			out := output
			if out == "" {
				out = path
			}
			if err := io.WriteFile(out, objects); err != nil {
				return err
			}
			if setErr != nil {
				printWarnings(setErr)
				return errors.Wrap(errors.ErrCodeInvalidArgument, setErr, "set %s on %d objects", name, len(indices))
			}
			printSuccess("Set %s on %d objects", name, len(indices))
			printFile(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&selection, "select", "s", "", "objects to modify: all, selected, or indices like 0,2,4-6")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of in place")
	return cmd
}

// =============================================================================
// merge
// =============================================================================

func (c *CLI) mergeCommand() *cobra.Command {
	var selection, output string

	cmd := &cobra.Command{
		Use:   "merge [file] [overrides]",
		Short: "Copy the overrides of one object onto a document",
		Long: `Merge takes the first object of the overrides document and copies
every attribute it sets onto the target objects. Attributes it leaves unset
are not touched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objects, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			overrides, err := loadDocument(args[1])
			if err != nil {
				return err
			}
			if len(overrides) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%s contains no objects", args[1])
			}

			count := len(objects)
			if selection == "" {
				object.Merge(&overrides[0], objects)
			} else {
				indices, err := parseSelection(selection, objects)
				if err != nil {
					return err
				}
				if err := object.MergeSelected(&overrides[0], objects, indices); err != nil {
					return err
				}
				count = len(indices)
			}

			out := output
			if out == "" {
				out = args[0]
			}
			if err := io.WriteFile(out, objects); err != nil {
				return err
			}
			values := overrides[0].Values()
			printSuccess("Merged %d attributes into %d objects", values.SetCount(), count)
			printFile(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&selection, "select", "s", "", "objects to modify: all, selected, or indices like 0,2,4-6")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of in place")
	return cmd
}

// =============================================================================
// convert
// =============================================================================

func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a document between yaml, json, toml and msgpack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objects, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if err := io.WriteFile(args[1], objects); err != nil {
				return err
			}
			printSuccess("Converted %d objects", len(objects))
			printFile(args[1])
			return nil
		},
	}
}
