// Package cli implements the roguemap command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/buildinfo"
	"github.com/avulnerador/RogueMap-Gen/pkg/cache"
	"github.com/avulnerador/RogueMap-Gen/pkg/config"
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/pipeline"
	"github.com/avulnerador/RogueMap-Gen/pkg/rng"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "roguemap"

	// stdio is the path meaning standard input or output.
	stdio = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "RogueMap generates branching run maps for roguelike games",
		Long:         `RogueMap builds floor-by-floor run maps with a start room, a final boss and an optional mini-boss floor, keeps hand-locked rooms across regeneration, and exports the result as JSON, DOT, SVG, PNG or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.regenerateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.dragCommand())
	root.AddCommand(c.nodeCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.mapsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// newEditor creates an editor. A zero seed draws from the global generator.
func (c *CLI) newEditor(seed uint64) *editor.Editor {
	var src rng.Source
	if seed != 0 {
		src = rng.New(seed)
	}
	return editor.New(src, c.Logger)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/roguemap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// dataDir returns the saved map directory (~/.local/share/roguemap/maps/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "maps"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "maps"), nil
}

// defaultStoreURL points at the file store under dataDir.
func defaultStoreURL() string {
	dir, err := dataDir()
	if err != nil {
		return "memory://"
	}
	return "file://" + dir
}

// =============================================================================
// Inputs
// =============================================================================

// mapInputs are the flags shared by commands that build maps from
// configuration files.
type mapInputs struct {
	configPath string
	typesPath  string
	seed       uint64
}

func (in *mapInputs) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.configPath, "config", "c", "", "TOML configuration file ([map] and [visual] tables)")
	cmd.Flags().StringVarP(&in.typesPath, "types", "t", "", "YAML node type registry merged over the defaults")
	cmd.Flags().Uint64Var(&in.seed, "seed", 0, "random seed for reproducible maps (0 picks one)")
}

// load reads the configuration and node types. Empty paths mean defaults.
func (in mapInputs) load() (config.File, nodetype.Registry, error) {
	f := config.DefaultFile()
	if in.configPath != "" {
		var err error
		if f, err = config.Load(in.configPath); err != nil {
			return config.File{}, nil, err
		}
	}
	reg := nodetype.Defaults()
	if in.typesPath != "" {
		var err error
		if reg, err = nodetype.Load(in.typesPath); err != nil {
			return config.File{}, nil, err
		}
	}
	return f, reg, nil
}

// newDocument returns an empty document carrying f and reg, recolored with
// the configured theme.
func newDocument(f config.File, reg nodetype.Registry) (document.Document, error) {
	d := document.New(runmap.Map{}, f.Map)
	d.VisualConfig = f.Visual
	d.NodeTypes = reg
	if theme := f.Visual.Theme; theme != "" {
		themed, err := reg.ApplyTheme(theme)
		if err != nil {
			return document.Document{}, err
		}
		d.NodeTypes = themed
	}
	return d, nil
}

// readDocument reads a map document from path, or stdin for "-".
func readDocument(path string) (document.Document, error) {
	if path == stdio {
		return document.Read(os.Stdin)
	}
	return document.ReadFile(path)
}

// writeDocument writes d to path, or stdout for "" and "-".
func writeDocument(d document.Document, path string) error {
	if path == "" || path == stdio {
		return document.Write(d, os.Stdout)
	}
	return document.WriteFile(d, path)
}

// editFile applies fn to the document at path and writes the result to
// output, or back to path when output is empty.
func editFile(path, output string, fn func(document.Document) (document.Document, error)) error {
	d, err := readDocument(path)
	if err != nil {
		return err
	}
	if d, err = fn(d); err != nil {
		return err
	}
	if output == "" && path != stdio {
		output = path
	}
	return writeDocument(d, output)
}

// parseNodeID parses a node id argument.
func parseNodeID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid node id %q", s)
	}
	return id, nil
}

// parseOffset parses a drag distance argument.
func parseOffset(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid offset %q", s)
	}
	return v, nil
}
