// Command docload ingests documents from object stores and cloud
// drives, and manages space group metadata.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arkivio/docload/internal/adapters/driven/config/file"
	"github.com/arkivio/docload/internal/adapters/driven/storage/sqlite"
	"github.com/arkivio/docload/internal/adapters/driving/cli"
	"github.com/arkivio/docload/internal/connectors/dropbox"
	"github.com/arkivio/docload/internal/connectors/google/drive"
	"github.com/arkivio/docload/internal/connectors/objectstore"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/core/services"
	"github.com/arkivio/docload/internal/extractors"
)

func main() {
	var store *sqlite.Store

	cli.SetConfigureFunc(func() error {
		cfg, err := file.NewConfigStore(cli.ConfigDir())
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}

		store, err = sqlite.NewStore(cli.DataDir())
		if err != nil {
			return fmt.Errorf("open metadata store: %w", err)
		}

		registry := extractors.DefaultRegistry(nil)
		connector, err := buildConnector(cfg, registry)
		if err != nil {
			return err
		}

		cli.SetServices(services.NewLoader(connector, registry), store.SpaceGroupStore())
		return nil
	})

	err := cli.Execute()
	if store != nil {
		store.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// buildConnector constructs the connector named by connector.type in
// the configuration. Defaults to the local filesystem object store.
func buildConnector(cfg driven.ConfigStore, registry driven.ExtractorRegistry) (driven.Connector, error) {
	connectorType := cfg.GetString("connector.type")
	if connectorType == "" {
		connectorType = "fs"
	}

	switch connectorType {
	case "fs", "memory":
		root := cfg.GetString("connector.fs.root")
		if root == "" {
			root = "."
		}
		return objectstore.New(connectorType, map[string]string{"root": root}, registry)

	case "gdrive":
		driveCfg := drive.DefaultConfig()
		if folderID := cfg.GetString("connector.gdrive.folder_id"); folderID != "" {
			driveCfg.SelectedFolderID = folderID
		}
		if pageSize := cfg.GetInt("connector.gdrive.page_size"); pageSize > 0 {
			driveCfg.PageSize = int64(pageSize)
		}
		return drive.New(context.Background(), credentialMap(cfg, "connector.gdrive.credentials"), driveCfg, registry)

	case "dropbox":
		dbxCfg := dropbox.DefaultConfig()
		dbxCfg.Root = cfg.GetString("connector.dropbox.root")
		return dropbox.New(credentialMap(cfg, "connector.dropbox.credentials"), dbxCfg, registry)

	default:
		return nil, fmt.Errorf("unknown connector type %q", connectorType)
	}
}

// credentialMap widens a config table to the credential mapping shape
// the connectors take.
func credentialMap(cfg driven.ConfigStore, key string) map[string]any {
	table := cfg.GetStringMap(key)
	creds := make(map[string]any, len(table))
	for k, v := range table {
		creds[k] = v
	}
	return creds
}
