package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordquiz",
		Short: "Vocabulary flashcard quiz",
		Long: `WordQuiz quizzes English vocabulary (CEFR B1-C1) against Thai translations.
Each question shows a word and four translations; pick the right one.

Run without a subcommand for the interactive terminal UI.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a config file (default: ./wordquiz.yaml)")
	pf.String("data", "", "Dataset file path or http(s) URL")
	pf.String("levels", "", "Comma-separated CEFR levels to include, e.g. B2,C1")
	pf.Int("rounds", 0, "Questions per round")
	pf.String("distractors", "", "Distractor strategy: uniform, segmented, letter")
	pf.String("picker", "", "Target word picker: random, deck, letter")
	pf.String("scheme", "", "Outcome scheme: stars, console")
	pf.Uint64("seed", 0, "Fixed random seed for reproducible rounds")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file")

	root.Flags().Bool("no-splash", false, "Skip the welcome animation")

	root.AddCommand(newPlayCmd(), newServeCmd(), newWordsCmd(), newVersionCmd())
	return root
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
