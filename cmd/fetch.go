package cmd

import (
	"context"
	"encoding/json"
	"fuelprice/config"
	"fuelprice/data"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:     "fetch [fuel] [city]",
	Short:   "Fetch a price once and print it",
	Example: "fuelprice fetch diesel chennai",
	Args:    cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := fetchOnce(context.Background(), os.Stdout, config.C, args)
		if err != nil {
			log.WithError(err).Fatal("write result error")
		}
	},
}

// fetchOnce writes the payload the server would send for args. Without
// arguments the configured default fuel and city are used.
func fetchOnce(ctx context.Context, w io.Writer, c config.Config, args []string) error {
	defaults := defaultQuery(c)
	q, ok := data.QueryFromPath(strings.Join(args, "/"), defaults)
	if !ok {
		q = defaults
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(lookup(ctx, newFetcher(c), q))
}
