package cli

import (
	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
)

// generateCommand creates the generate command for building a new map.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		in     mapInputs
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new run map document",
		Long: `Generate a new run map from a TOML configuration and an optional YAML node type registry.

The document is written as JSON to --output, or to stdout when no output is given.`,
		Example: `  roguemap generate -o map.json
  roguemap generate -c map.toml -t types.yaml --seed 7 -o map.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, reg, err := in.load()
			if err != nil {
				return err
			}
			d, err := newDocument(f, reg)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			d, err = c.newEditor(in.seed).Generate(d)
			if err != nil {
				return err
			}
			prog.done("Generated map")

			if err := writeDocument(d, output); err != nil {
				return err
			}
			reportWritten(d, output)
			return nil
		},
	}

	in.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// regenerateCommand creates the regenerate command, which rebuilds a saved
// map while keeping its locked rooms.
func (c *CLI) regenerateCommand() *cobra.Command {
	var (
		in     mapInputs
		output string
	)

	cmd := &cobra.Command{
		Use:   "regenerate <map.json>",
		Short: "Regenerate a map, keeping locked rooms",
		Long: `Regenerate every unlocked room of a saved map.

Locked rooms keep their id, floor, type and icon. Passing --config or --types
replaces the document's configuration or node types before regenerating.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed := c.newEditor(in.seed)
			var d document.Document
			err := editFile(args[0], output, func(doc document.Document) (document.Document, error) {
				if err := in.applyTo(&doc); err != nil {
					return document.Document{}, err
				}
				var err error
				d, err = ed.Generate(doc)
				return d, err
			})
			if err != nil {
				return err
			}
			reportWritten(d, outputPath(args[0], output))
			return nil
		},
	}

	in.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	return cmd
}

// applyTo replaces the configuration and node types of d with the files
// named by the flags. Unset flags leave d unchanged.
func (in mapInputs) applyTo(d *document.Document) error {
	if in.configPath == "" && in.typesPath == "" {
		return nil
	}
	f, reg, err := in.load()
	if err != nil {
		return err
	}
	if in.configPath != "" {
		d.MapConfig = f.Map
		d.VisualConfig = f.Visual
	}
	if in.typesPath != "" {
		d.NodeTypes = reg
	}
	if in.configPath != "" && f.Visual.Theme != "" {
		themed, err := d.NodeTypes.ApplyTheme(f.Visual.Theme)
		if err != nil {
			return err
		}
		d.NodeTypes = themed
	}
	return nil
}

// outputPath returns where editFile wrote its result.
func outputPath(input, output string) string {
	if output == "" && input != stdio {
		return input
	}
	return output
}

// reportWritten prints the saved path and map statistics. Nothing is
// printed when the document went to stdout.
func reportWritten(d document.Document, path string) {
	if path == "" || path == stdio {
		return
	}
	s := editor.Summarize(d)
	printSuccess("Saved map")
	printFile(path)
	printStats(s, false)
	if !s.Valid {
		printWarning("map is invalid: %s", s.Problem)
	}
}
