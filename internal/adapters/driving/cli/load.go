package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [path]",
	Short: "Run the ingestion pipeline",
	Long: `Lists files under the given path on the configured connector,
downloads them concurrently and extracts them into documents.
A trailing separator on an object-store path means recursive listing.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	if loaderService == nil {
		return errors.New("loader not configured")
	}

	path := args[0]
	ctx := context.Background()

	docs, err := loaderService.Load(ctx, path, nil, nil)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	cmd.Printf("Loaded %d documents from %s\n", len(docs), path)
	for _, item := range loaderService.DocumentList() {
		cmd.Printf("  %s  (%d bytes, indexed %d)\n", item.Link, item.Size, item.IndexedOn)
	}
	return nil
}
