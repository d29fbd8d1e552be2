// Init command for the wardrobe CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/internal/store"
	"github.com/mesh-intelligence/wardrobe/pkg/options"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the preset directories",
	Long: `Init creates the settings and cosmetics preset directories under the data
directory. Running it again is harmless; existing directories and presets are
left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := openStorage()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer storage.Close()

		st := store.New(storage, options.DefaultSchema(), logger)
		if err := st.EnsureDirectories(); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Initialized preset directories under %s\n", dataDir)
		return nil
	},
}
