// Save command for the wardrobe CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current option values as a named preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		category, err := selectedCategory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		sess, err := openSession()
		if err != nil {
			return fmt.Errorf("save: %w", err)
		}
		defer sess.Close()

		if err := sess.store.Save(name, category); err != nil {
			if errors.Is(err, types.ErrEmptyName) {
				fmt.Fprintln(os.Stderr, "preset name must not be empty")
				os.Exit(exitUserError)
			}
			return fmt.Errorf("save preset: %w", err)
		}

		fmt.Printf("Saved %s preset %q\n", category, name)
		return nil
	},
}
