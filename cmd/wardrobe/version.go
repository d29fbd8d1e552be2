// Version command for the wardrobe CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

const modulePath = "github.com/mesh-intelligence/wardrobe"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wardrobe version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "wardrobe v%s\nmodule: %s\n", wardrobe.Version, modulePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
