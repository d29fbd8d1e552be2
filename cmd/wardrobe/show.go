// Show command for the wardrobe CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/internal/codec"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current value of every option",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return fmt.Errorf("show: %w", err)
		}
		defer sess.Close()

		w := new(strings.Builder)
		for _, opt := range sess.schema.Options() {
			fmt.Fprintf(w, "%-10s %-25s %s\n",
				opt.Category(), codec.NormalizeName(opt.Name()), opt.Value())
		}
		fmt.Print(w.String())
		return nil
	},
}
