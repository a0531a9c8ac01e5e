package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/app"
	"github.com/sutticue/flashcard-game/internal/config"
	"github.com/sutticue/flashcard-game/internal/logger"
	"github.com/sutticue/flashcard-game/internal/quizgen"
	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// runApp loads the word list and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	log, err := logger.NewForTUI(cfg.Log)
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

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Words:       words,
		Factory:     factory,
		RoundLength: cfg.RoundLength,
		Strategy:    cfg.Distractors,
		Log:         log,
		SkipWelcome: noSplash,
	})
}

// loadConfig reads configuration with the command's flags on top.
// defaults replace built-in defaults for this command only.
func loadConfig(cmd *cobra.Command, defaults map[string]any) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(config.Options{
		ConfigFile: path,
		Flags:      cmd.Flags(),
		Defaults:   defaults,
	})
}

// loadWords loads the configured dataset.
func loadWords(ctx context.Context, cfg *config.Config) (*vocab.Repository, error) {
	levels, err := cfg.LevelSet()
	if err != nil {
		return nil, err
	}
	repo, err := vocab.Load(ctx, cfg.Data, levels)
	if err != nil {
		return nil, describeLoadError(err)
	}
	return repo, nil
}

func describeLoadError(err error) error {
	var empty *vocab.EmptyDatasetError
	var load *vocab.LoadError
	switch {
	case errors.As(err, &empty):
		return fmt.Errorf("nothing to quiz on, %w; try a wider --levels", err)
	case errors.As(err, &load):
		return fmt.Errorf("could not load the word list: %w", err)
	}
	return err
}

// newRoundFactory returns a factory for fresh rounds over words. With a
// fixed seed, the n-th round is reproducible.
func newRoundFactory(cfg *config.Config, words *vocab.Repository, log *zap.Logger) (func() (*round.Controller, error), error) {
	rc, err := cfg.RoundConfig()
	if err != nil {
		return nil, err
	}
	rc.Logger = log
	qc := cfg.QuizConfig()

	// Fail early on settings that would break every round.
	if _, err := quizgen.New(words.Words(), qc, quizgen.NewSeededRand(1)); err != nil {
		return nil, fmt.Errorf("build questions: %w", err)
	}

	var n uint64
	return func() (*round.Controller, error) {
		rng := quizgen.NewRand()
		if cfg.Seed != 0 {
			rng = quizgen.NewSeededRand(cfg.Seed + n)
			n++
		}
		gen, err := quizgen.New(words.Words(), qc, rng)
		if err != nil {
			return nil, err
		}
		return round.New(gen, rc)
	}, nil
}
