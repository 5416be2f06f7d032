package cmd

import (
	"fmt"

	"mediastore/core/config"
	"mediastore/core/logger"
	"mediastore/core/storage"
	"mediastore/feature/selftest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// selftestCmd represents the selftest command
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run a live end-to-end check against the configured container",
	Long: `Uploads a small probe blob to the configured container, verifies it can be
listed, downloaded, and addressed by URL, then deletes it. Requires valid
storage credentials; the run aborts on the first step that misbehaves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		// Unknown types are warned about, not rejected; the client is built
		// with azure semantics either way.
		if !cfg.Storage.IsValidType() {
			logg.Warn("Unrecognized storage type", zap.String("type", cfg.Storage.Type))
		}

		// 3. Initialize Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		store := storage.NewStore(client, cfg.Storage)

		// 4. Run the check
		svc := selftest.NewService(store, logg)
		if err := svc.Run(cmd.Context()); err != nil {
			return fmt.Errorf("selftest failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(selftestCmd)
}
