// Delete command for the wardrobe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a saved preset",
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
			return fmt.Errorf("delete: %w", err)
		}
		defer sess.Close()

		if err := sess.store.Delete(name, category); err != nil {
			return fmt.Errorf("delete preset: %w", err)
		}

		fmt.Printf("Deleted %s preset %q\n", category, name)
		return nil
	},
}
