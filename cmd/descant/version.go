package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/descant"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of descant",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("descant version %s\n", strings.TrimSpace(descant.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
