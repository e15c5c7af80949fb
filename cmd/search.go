package cmd

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/integra/explorer/internal/search"
)

var (
	searchTrace bool

	searchCmd = &cobra.Command{
		Use:   "search <query>",
		Short: "Resolve a search query against the configured store",
		Long:  "Run the universal search cascade for a transaction hash, Integra hash, document hash, Integra ID or block number and print the result envelope.",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			RunSearch(cmd, args)
		},
	}
)

func init() {
	searchCmd.Flags().BoolVar(&searchTrace, "trace", false, "Also print the classification and the lookup steps that ran")
}

func RunSearch(cmd *cobra.Command, args []string) {
	a, err := newApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize explorer")
	}
	defer a.Close()

	query := strings.Join(args, " ")
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	if !searchTrace {
		if err := encoder.Encode(a.service.Search(cmd.Context(), query)); err != nil {
			log.Fatal().Err(err).Msg("Failed to print search result")
		}
		return
	}

	resolver := search.NewResolver(a.storage.MainStorage, a.storage.Builder, 0)
	result, trace := resolver.ResolveWithTrace(cmd.Context(), query)
	out := struct {
		Result search.SearchResult `json:"result"`
		Trace  search.Trace        `json:"trace"`
	}{result, trace}
	if err := encoder.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("Failed to print search result")
	}
}
