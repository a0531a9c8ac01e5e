package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/console"
	"github.com/sutticue/flashcard-game/internal/logger"
	"github.com/sutticue/flashcard-game/internal/round"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one round in plain console mode",
		Long: `Play one round with numbered answers typed on standard input.
Enter q to stop early. Skipping is off by default in this mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]any{
				"allow_skip": false,
				"scheme":     round.SchemeConsole,
			})
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			words, err := loadWords(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			factory, err := newRoundFactory(cfg, words, log)
			if err != nil {
				return err
			}
			ctrl, err := factory()
			if err != nil {
				return err
			}

			sum, err := console.New(ctrl, cmd.InOrStdin(), cmd.OutOrStdout(), log).Run(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug("round finished",
				zap.String("round_id", sum.RoundID),
				zap.Int("score", sum.Score),
				zap.Int("asked", sum.Asked))
			return nil
		},
	}
}
