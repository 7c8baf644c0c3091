package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/store"
)

// mapsCommand manages maps kept in a store, the same stores serve uses.
func (c *CLI) mapsCommand() *cobra.Command {
	var storeURL string

	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Manage maps in a store",
		Long: `List, fetch, save and remove maps in a store.

The store URL takes the same forms as serve --store and defaults to the file
store under the data directory.`,
	}
	cmd.PersistentFlags().StringVar(&storeURL, "store", "", "map store URL")

	open := func(ctx context.Context) (store.Store, error) {
		if storeURL == "" {
			storeURL = defaultStoreURL()
		}
		return store.Open(ctx, storeURL)
	}

	cmd.AddCommand(mapsListCommand(open))
	cmd.AddCommand(mapsGetCommand(open))
	cmd.AddCommand(mapsPutCommand(open))
	cmd.AddCommand(mapsRemoveCommand(open))

	return cmd
}

type storeOpener func(ctx context.Context) (store.Store, error)

func mapsListCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored map ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			ids, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func mapsGetCommand(open storeOpener) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a stored map to a file or stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			d, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeDocument(d, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func mapsPutCommand(open storeOpener) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "put <map.json>",
		Short: "Save a map document to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if id == "" {
				id = store.NewID()
			} else if err := store.ValidateID(id); err != nil {
				return err
			}

			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Put(cmd.Context(), id, d); err != nil {
				return err
			}
			printSuccess("Stored map %s", StyleHighlight.Render(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "map id (default: a new random id)")
	return cmd
}

func mapsRemoveCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a stored map",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Removed map %s", args[0])
			return nil
		},
	}
}
