package commands

import (
	"menu/internal/core/domain/ordering"

	"github.com/spf13/cobra"
)

func sortLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort-length [values...]",
		Short: "Print values sorted by length, one per line",
		Long: "Stable sort of the given values by character count, shortest first.\n" +
			"Without arguments the values abc, ab and a are used.",
		RunE: func(c *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				values = []string{"abc", "ab", "a"}
			}
			return ordering.PrintSortedByLength(c.OutOrStdout(), values)
		},
	}
}
