package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show word counts per level for the configured dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			words, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source: %s\n\n", words.Source())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LEVEL\tWORDS")
			counts := words.CountByLevel()
			for _, l := range words.Levels().Sorted() {
				fmt.Fprintf(tw, "%s\t%d\n", l, counts[l])
			}
			fmt.Fprintf(tw, "total\t%d\n", words.Len())
			return tw.Flush()
		},
	}
}
