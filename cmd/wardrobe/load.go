// Load command for the wardrobe CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Apply a saved preset onto the current option values",
	Long: `Load reads the named preset and re-applies its values onto the option set.
Options added since the preset was saved keep their defaults; values for
options that no longer exist are ignored. The result becomes the new cached
configuration for the category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		category, err := selectedCategory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		sess, err := openSession()
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		defer sess.Close()

		if err := sess.store.Load(name, category); err != nil {
			if errors.Is(err, types.ErrPresetNotFound) {
				fmt.Fprintf(os.Stderr, "no %s preset named %q\n", category, name)
				os.Exit(exitUserError)
			}
			if errors.Is(err, types.ErrMalformedPreset) {
				fmt.Fprintf(os.Stderr, "preset %q is not a valid preset document\n", name)
				os.Exit(exitUserError)
			}
			return fmt.Errorf("load preset: %w", err)
		}

		if err := sess.store.SaveCache(category); err != nil {
			return fmt.Errorf("update cache: %w", err)
		}

		fmt.Printf("Loaded %s preset %q\n", category, name)
		return nil
	},
}
