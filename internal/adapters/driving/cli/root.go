// Package cli implements the command-line driving adapter.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/core/ports/driving"
	"github.com/arkivio/docload/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are injected by the composition root before Execute.
var (
	loaderService   driving.Loader
	spaceGroupStore driven.SpaceGroupStore
)

// Global flag values.
var (
	verbose   bool
	configDir string
	dataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "docload",
	Short: "Ingest documents from object stores and cloud drives",
	Long: `docload runs a multi-source document ingestion pipeline:
it lists files from a configured connector, downloads them concurrently
into a scoped temporary directory, and extracts them into plain-text
documents. It also manages space groups in a local metadata store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if configureFn != nil {
			return configureFn()
		}
		return nil
	},
}

// configureFn wires services once flags are parsed. Installed by the
// composition root.
var configureFn func() error

// SetConfigureFunc installs the service wiring hook. It runs after
// global flags are parsed and before any command body.
func SetConfigureFunc(fn func() error) {
	configureFn = fn
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Config directory (default ~/.docload)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default ~/.docload/data)")
}

// SetServices injects the driving-port implementations the commands
// run against.
func SetServices(loader driving.Loader, groups driven.SpaceGroupStore) {
	loaderService = loader
	spaceGroupStore = groups
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// ConfigDir returns the --config flag value.
func ConfigDir() string {
	return configDir
}

// DataDir returns the --data-dir flag value.
func DataDir() string {
	return dataDir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
