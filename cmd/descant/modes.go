package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/descant/internal/presentation/tui"
	"github.com/aretw0/descant/pkg/theory"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the scale modes descant understands",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()

		names := make([]string, 0)
		for _, m := range theory.Modes() {
			names = append(names, m.String())
		}

		render := tui.NewRenderer()
		out, err := render(tui.ModesMarkdown(names))
		if err != nil {
			// Fall back to the raw markdown if the terminal renderer fails.
			out = tui.ModesMarkdown(names)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
