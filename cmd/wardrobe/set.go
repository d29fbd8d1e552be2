// Set command for the wardrobe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

var setCmd = &cobra.Command{
	Use:   "set <option> <value>",
	Short: "Set one option and remember it for the next run",
	Long: `Set changes a single option's value by its display name and refreshes the
category's cached configuration, so the change survives into the next
invocation.

Example:
  wardrobe set Difficulty Hard
  wardrobe set "Starting Lives" 5
  wardrobe set "UI Theme" Midnight`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		optionName, value := args[0], args[1]

		sess, err := openSession()
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}
		defer sess.Close()

		opt, ok := sess.schema.Find(optionName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown option %q\n", optionName)
			os.Exit(exitUserError)
		}

		if !opt.SetFromText(value) {
			fmt.Fprintf(os.Stderr, "option %q does not accept %q (current: %s)\n",
				optionName, value, opt.Value())
			os.Exit(exitUserError)
		}

		// Toggle-category options have no preset files and nothing to cache.
		if opt.Category() != types.CategoryToggle {
			if err := sess.store.SaveCache(opt.Category()); err != nil {
				return fmt.Errorf("update cache: %w", err)
			}
		}

		fmt.Printf("%s = %s\n", optionName, opt.Value())
		return nil
	},
}
