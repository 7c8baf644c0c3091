package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/watch"
)

// watchCommand regenerates a map whenever its configuration changes.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		in     mapInputs
		output string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate a map whenever its configuration files change",
		Long: `Watch the --config and --types files and regenerate the map in --output each
time one of them is saved. Rooms locked in the output document are kept.
Invalid configuration is reported and the previous map is left in place.`,
		Example: `  roguemap watch -c map.toml -t types.yaml -o map.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.configPath == "" && in.typesPath == "" {
				return errors.New("watch needs --config or --types")
			}
			if output == "" {
				return errors.New("watch needs --output")
			}
			return c.runWatch(cmd.Context(), in, output)
		},
	}

	in.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "map document to keep up to date")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, in mapInputs, output string) error {
	logger := loggerFromContext(ctx)

	var paths []string
	for _, p := range []string{in.configPath, in.typesPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	w, err := watch.New(paths...)
	if err != nil {
		return err
	}
	defer w.Close()

	ed := c.newEditor(in.seed)
	if err := rebuild(ed, in, output); err != nil {
		return err
	}
	printInfo("Watching %d file(s), Ctrl+C to stop", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			logger.Debug("changed", "file", name)
			if err := rebuild(ed, in, output); err != nil {
				printError("%v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

// rebuild regenerates output from the watched inputs. An existing output
// document contributes its locked rooms.
func rebuild(ed *editor.Editor, in mapInputs, output string) error {
	d, err := document.ReadFile(output)
	switch {
	case err == nil:
		if err := in.applyTo(&d); err != nil {
			return err
		}
	case errors.Is(err, fs.ErrNotExist):
		f, reg, err := in.load()
		if err != nil {
			return err
		}
		if d, err = newDocument(f, reg); err != nil {
			return err
		}
	default:
		return err
	}

	if d, err = ed.Generate(d); err != nil {
		return err
	}
	if err := document.WriteFile(d, output); err != nil {
		return err
	}
	reportWritten(d, output)
	return nil
}
