package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sutticue/flashcard-game/internal/logger"
	"github.com/sutticue/flashcard-game/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rounds over a JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
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

			return server.New(cfg.Server, words, factory, log).ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	return cmd
}
