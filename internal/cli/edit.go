package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
)

// layoutCommand creates the layout command. Flags patch the map
// configuration; the boss floor is then brought in line and coordinates
// recomputed without regenerating other floors.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		patch  config.MapConfig
	)

	cmd := &cobra.Command{
		Use:   "layout <map.json>",
		Short: "Update layout settings and recompute positions",
		Long: `Update layout settings of a saved map and recompute room positions.

Orientation, spacing and jitter take effect immediately. Moving or toggling
the mini-boss floor rebuilds only that floor's boss; floor count and floor
size changes apply on the next regenerate.`,
		Example: `  roguemap layout map.json --orientation horizontal
  roguemap layout map.json --boss-row 4 --intermediate-boss`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed := c.newEditor(0)
			return editFile(args[0], output, func(d document.Document) (document.Document, error) {
				cfg, changed := patchConfig(cmd, d.MapConfig, patch)
				if !changed {
					return ed.UpdateLayout(d), nil
				}
				return ed.SetConfig(d, cfg), nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	f.StringVar(&patch.Orientation, "orientation", "", "vertical or horizontal")
	f.IntVar(&patch.NumRows, "rows", 0, "number of floors after the start floor")
	f.IntVar(&patch.MinNodesPerRow, "min-nodes", 0, "minimum rooms per floor")
	f.IntVar(&patch.MaxNodesPerRow, "max-nodes", 0, "maximum rooms per floor")
	f.IntVar(&patch.BossRow, "boss-row", 0, "floor holding the mini-boss")
	f.BoolVar(&patch.HasIntermediateBoss, "intermediate-boss", false, "place a mini-boss on --boss-row")
	f.Float64Var(&patch.SpacingX, "spacing-x", 0, "spacing between rooms of a floor")
	f.Float64Var(&patch.SpacingY, "spacing-y", 0, "spacing between floors")
	f.IntVar(&patch.MaxConnectionReach, "reach", 0, "maximum index distance of a connection")
	f.BoolVar(&patch.RandomizeNodePositions, "randomize", false, "jitter room positions")
	f.Float64Var(&patch.JitterIntensity, "jitter", 0, "jitter intensity in percent of spacing (0-200)")

	return cmd
}

// patchConfig copies the flags the user set from patch onto cfg and reports
// whether any were set.
func patchConfig(cmd *cobra.Command, cfg, patch config.MapConfig) (config.MapConfig, bool) {
	changed := false
	set := func(name string) bool {
		if cmd.Flags().Changed(name) {
			changed = true
			return true
		}
		return false
	}
	if set("orientation") {
		cfg.Orientation = patch.Orientation
	}
	if set("rows") {
		cfg.NumRows = patch.NumRows
	}
	if set("min-nodes") {
		cfg.MinNodesPerRow = patch.MinNodesPerRow
	}
	if set("max-nodes") {
		cfg.MaxNodesPerRow = patch.MaxNodesPerRow
	}
	if set("boss-row") {
		cfg.BossRow = patch.BossRow
	}
	if set("intermediate-boss") {
		cfg.HasIntermediateBoss = patch.HasIntermediateBoss
	}
	if set("spacing-x") {
		cfg.SpacingX = patch.SpacingX
	}
	if set("spacing-y") {
		cfg.SpacingY = patch.SpacingY
	}
	if set("reach") {
		cfg.MaxConnectionReach = patch.MaxConnectionReach
	}
	if set("randomize") {
		cfg.RandomizeNodePositions = patch.RandomizeNodePositions
	}
	if set("jitter") {
		cfg.JitterIntensity = patch.JitterIntensity
	}
	return cfg, changed
}

// dragCommand creates the drag command for moving a room by hand.
func (c *CLI) dragCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "drag <map.json> <id> <dx> <dy>",
		Short: "Move a room away from its computed position",
		Long: `Move a room by (dx, dy). The offset accumulates across drags, is kept within
the maximum drag radius of the computed position, and survives relayout.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[1])
			if err != nil {
				return err
			}
			dx, err := parseOffset(args[2])
			if err != nil {
				return err
			}
			dy, err := parseOffset(args[3])
			if err != nil {
				return err
			}
			return editFile(args[0], output, func(d document.Document) (document.Document, error) {
				return c.newEditor(0).Drag(d, id, dx, dy)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

// nodeCommand groups the single-room edits.
func (c *CLI) nodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Edit a single room",
	}

	var output string
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")

	edit := func(use, short string, fn func(document.Document, int) (document.Document, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <map.json> <id>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseNodeID(args[1])
				if err != nil {
					return err
				}
				return editFile(args[0], output, func(d document.Document) (document.Document, error) {
					return fn(d, id)
				})
			},
		}
	}

	cmd.AddCommand(edit("promote", "Make a room the mini-boss of its floor", func(d document.Document, id int) (document.Document, error) {
		return c.newEditor(0).Promote(d, id)
	}))
	cmd.AddCommand(edit("delete", "Remove a room, rewiring its neighbours", func(d document.Document, id int) (document.Document, error) {
		return c.newEditor(0).Delete(d, id)
	}))
	cmd.AddCommand(edit("lock", "Keep a room across regeneration", func(d document.Document, id int) (document.Document, error) {
		return c.newEditor(0).SetLocked(d, id, true)
	}))
	cmd.AddCommand(edit("unlock", "Let regeneration replace a room", func(d document.Document, id int) (document.Document, error) {
		return c.newEditor(0).SetLocked(d, id, false)
	}))
	cmd.AddCommand(c.nodeSetCommand(&output))

	return cmd
}

// nodeSetCommand creates "node set" for changing a room's type and visuals.
func (c *CLI) nodeSetCommand(output *string) *cobra.Command {
	var (
		typeKey, icon, border string
		size                  float64
		glow                  int
	)

	cmd := &cobra.Command{
		Use:   "set <map.json> <id>",
		Short: "Change a room's type, icon or visuals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[1])
			if err != nil {
				return err
			}
			set := cmd.Flags().Changed
			return editFile(args[0], *output, func(d document.Document) (document.Document, error) {
				n, ok := d.Map().Node(id)
				if !ok {
					return document.Document{}, errors.New(errors.ErrCodeNodeNotFound, "node %d not found", id)
				}
				if set("type") {
					if _, known := d.NodeTypes[typeKey]; !known {
						return document.Document{}, errors.New(errors.ErrCodeInvalidInput,
							"unknown type %q (known: %s)", typeKey, strings.Join(d.NodeTypes.Keys(), ", "))
					}
					n.Type = typeKey
					n.IconClass = d.NodeTypes.Icon(typeKey, n.IconClass)
				}
				if set("icon") {
					n.IconClass = icon
				}
				if set("border-color") {
					n.BorderColor = border
				}
				if set("size") {
					n.CustomSize = &size
				}
				if set("glow") {
					n.CustomGlow = &glow
				}
				return c.newEditor(0).UpdateNode(d, n)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&typeKey, "type", "", "room type key")
	f.StringVar(&icon, "icon", "", "icon class")
	f.StringVar(&border, "border-color", "", "border color")
	f.Float64Var(&size, "size", 1, "size multiplier")
	f.IntVar(&glow, "glow", 0, "glow radius")

	return cmd
}

// themeCommand lists the built-in themes or applies one to a map.
func (c *CLI) themeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "theme [<map.json> <name>]",
		Short: "List themes or recolor a map with one",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return nodetype.Themes(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range nodetype.Themes() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			return editFile(args[0], output, func(d document.Document) (document.Document, error) {
				return c.newEditor(0).ApplyTheme(d, args[1])
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}
