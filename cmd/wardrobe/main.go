// Package main provides the wardrobe CLI: saving, loading, and managing
// named presets of the configurable option set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
