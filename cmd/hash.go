package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/integra/explorer/internal/search"
)

var (
	hashIdentifier string

	hashCmd = &cobra.Command{
		Use:   "hash [file]",
		Short: "Compute the keccak256 hash of a document or an Integra ID",
		Long:  "Print the document hash of a file, or with --id the Integra hash of a human-assigned identifier, as searched by the explorer.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunHash,
	}
)

func init() {
	hashCmd.Flags().StringVar(&hashIdentifier, "id", "", "Integra ID to hash instead of a file")
}

func RunHash(cmd *cobra.Command, args []string) error {
	switch {
	case hashIdentifier != "" && len(args) > 0:
		return fmt.Errorf("pass either a file or --id, not both")
	case hashIdentifier != "":
		fmt.Fprintln(cmd.OutOrStdout(), search.IdentifierHash(hashIdentifier))
		return nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), search.ContentHash(data))
		return nil
	}
	return fmt.Errorf("a file or --id is required")
}
