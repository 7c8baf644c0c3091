package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
)

// validateCommand checks a saved map and prints its summary.
func (c *CLI) validateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <map.json>",
		Short: "Check a map and print its summary",
		Long: `Check that a saved map is well formed: ids are unique, the start and boss
floors hold one room each, every connection reaches the next floor, and every
room past the start has a parent. Exits non-zero when the map is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDocument(args[0])
			if err != nil {
				return err
			}
			s := editor.Summarize(d)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(s); err != nil {
					return err
				}
			} else {
				printSummary(out, s)
			}

			if !s.Valid {
				return errors.New(errors.ErrCodeInvalidMap, "%s", s.Problem)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
