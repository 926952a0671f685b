package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fader"
)

var conditionsCmd = &cobra.Command{
	Use:   "conditions",
	Short: "List condition and easing names accepted in configs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Conditions:")
		for _, c := range fader.Conditions() {
			fmt.Fprintf(out, "  %s\n", c)
		}
		fmt.Fprintln(out, "Easings:")
		for _, name := range fader.EasingNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
