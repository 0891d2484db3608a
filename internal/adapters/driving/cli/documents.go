package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List the last run's downloaded files",
	Long: `Prints the link, indexed timestamp and size of every file the
most recent load downloaded, whether or not extraction succeeded.`,
	RunE: runDocuments,
}

func init() {
	rootCmd.AddCommand(documentsCmd)
}

func runDocuments(cmd *cobra.Command, _ []string) error {
	if loaderService == nil {
		return errors.New("loader not configured")
	}

	items := loaderService.DocumentList()
	if len(items) == 0 {
		cmd.Println("No documents downloaded yet.")
		return nil
	}

	for _, item := range items {
		cmd.Printf("%s  (%d bytes, indexed %d)\n", item.Link, item.Size, item.IndexedOn)
	}
	return nil
}
