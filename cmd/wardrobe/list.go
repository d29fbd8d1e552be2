// List command for the wardrobe CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets for a category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := selectedCategory()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		sess, err := openSession()
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		defer sess.Close()

		names, err := sess.store.List(category)
		if err != nil {
			return fmt.Errorf("list presets: %w", err)
		}

		if len(names) == 0 {
			fmt.Printf("No %s presets saved.\n", category)
			return nil
		}

		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}
