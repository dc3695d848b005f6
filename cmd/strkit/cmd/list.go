package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/strkit/ops"
)

var listExamples bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available operations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range ops.Available() {
			op, ok := ops.Lookup(name)
			if !ok {
				continue
			}
			fmt.Fprintf(out, "%-12s %-36s %s\n", op.Name, op.Sig, op.Description)
			if listExamples && op.Example != "" {
				fmt.Fprintf(out, "%-12s   e.g. %s\n", "", op.Example)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listExamples, "examples", "e", false, "show an example for each operation")
}
