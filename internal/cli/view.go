package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
)

// viewCommand opens a map in the terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "view <map.json>",
		Short: "Browse and edit a map in the terminal",
		Long: `Open a saved map in an interactive terminal viewer.

Floors are listed boss first. Rooms can be locked, promoted, deleted, and the
map regenerated or re-themed; press s to write the changes back to the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			d, err := document.ReadFile(path)
			if err != nil {
				return err
			}

			// Editor logs would draw over the alternate screen.
			ed := c.newEditor(seed)
			ed.Logger = log.New(io.Discard)

			model := NewMapViewModel(d, ed, func(d document.Document) error {
				return document.WriteFile(d, path)
			})
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			if m, ok := final.(MapViewModel); ok && m.Dirty {
				printWarning("Unsaved changes to %s were discarded", path)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for regeneration (0 picks one)")
	return cmd
}
