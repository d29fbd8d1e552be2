// Premade preset commands for the wardrobe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/options"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

var premadeCmd = &cobra.Command{
	Use:   "premade",
	Short: "List or apply the shipped preset tables",
}

var premadeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shipped presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range options.Premades {
			fmt.Printf("%-12s %s\n", p.Name, p.Description)
		}
		return nil
	},
}

var premadeApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Apply a shipped preset to the current configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		premade, ok := options.FindPremade(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "no shipped preset named %q (see: wardrobe premade list)\n", name)
			os.Exit(exitUserError)
		}

		sess, err := openSession()
		if err != nil {
			return fmt.Errorf("premade apply: %w", err)
		}
		defer sess.Close()

		premade.Apply(sess.schema)

		for _, category := range []types.Category{types.CategorySetting, types.CategoryCosmetic} {
			if !premade.Touches(sess.schema, category) {
				continue
			}
			if err := sess.store.SaveCache(category); err != nil {
				return fmt.Errorf("update cache: %w", err)
			}
		}

		fmt.Printf("Applied premade preset %q\n", name)
		return nil
	},
}

func init() {
	premadeCmd.AddCommand(premadeListCmd)
	premadeCmd.AddCommand(premadeApplyCmd)
}
