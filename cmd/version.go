package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sutticue/flashcard-game/internal/quizgen"
	"github.com/sutticue/flashcard-game/internal/round"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and the available strategies",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "wordquiz", version)

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				fmt.Fprintf(out, "  go           %s\n", runtime.Version())
				fmt.Fprintf(out, "  distractors  %s\n", strings.Join(quizgen.DistractorStrategies(), ", "))
				fmt.Fprintf(out, "  pickers      %s\n", strings.Join(quizgen.TargetPickers(), ", "))
				fmt.Fprintf(out, "  schemes      %s, %s\n", round.SchemeStars, round.SchemeConsole)
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Also list Go version and strategy names")
	return cmd
}
