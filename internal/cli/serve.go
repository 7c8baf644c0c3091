package cli

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avulnerador/RogueMap-Gen/pkg/server"
	"github.com/avulnerador/RogueMap-Gen/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	storeURL string
	logFile  string
	seed     uint64
	noCache  bool
}

// serveCommand creates the serve command, which runs the HTTP editing API.
func (c *CLI) serveCommand() *cobra.Command {
	so := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the map editing API over HTTP",
		Long: `Serve the map editing API over HTTP.

Maps are kept in the store named by --store:
  memory://                         in-process, lost on exit
  file:///path/to/dir               one JSON file per map (default)
  redis://host:6379/0               Redis keys
  mongodb://host:27017/roguemap     a MongoDB collection

Request logs go to stderr, or as JSON to a rotated file with --log-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), so)
		},
	}

	f := cmd.Flags()
	f.StringVar(&so.addr, "addr", so.addr, "listen address")
	f.StringVar(&so.storeURL, "store", "", "map store URL (default file store under the data directory)")
	f.StringVar(&so.logFile, "log-file", "", "write JSON logs to this file, rotated by size")
	f.Uint64Var(&so.seed, "seed", 0, "random seed for reproducible generation (0 picks one)")
	f.BoolVar(&so.noCache, "no-cache", false, "disable the artifact cache for exports")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, so serveOpts) error {
	logger := c.Logger
	if so.logFile != "" {
		var closer io.Closer
		logger, closer = newFileLogger(so.logFile, c.Logger.GetLevel())
		defer closer.Close()
		printInfo("Logging to %s", so.logFile)
	}

	if so.storeURL == "" {
		so.storeURL = defaultStoreURL()
	}
	st, err := store.Open(ctx, so.storeURL)
	if err != nil {
		return err
	}
	defer st.Close()

	runner, err := c.newRunner(so.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()
	runner.Logger = logger

	ed := c.newEditor(so.seed)
	ed.Logger = logger

	printSuccess("Serving on %s", so.addr)
	printDetail("Store: %s", so.storeURL)
	printNextStep("Create a map", "curl -X POST http://"+displayAddr(so.addr)+"/api/maps")

	err = server.New(ed, st, runner, logger).ListenAndServe(ctx, so.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// displayAddr turns a listen address into one a client can reach.
func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}
