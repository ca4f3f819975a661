package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flipdeck/flip/internal/config"
	"github.com/flipdeck/flip/internal/deck"
	"github.com/flipdeck/flip/internal/delivery/tui"
	"github.com/flipdeck/flip/internal/game"
	"github.com/flipdeck/flip/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var strategyFlag string

	cmd := &cobra.Command{
		Use:          "flip [deck.json]",
		Short:        "Study flashcards in the terminal",
		Long:         "flip presents a deck of flashcards one at a time: reveal the back, mark it hit or miss, and get a tally when the deck runs out.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, strategyFlag)
		},
	}

	cmd.Flags().StringVarP(&strategyFlag, "strategy", "s", "", "card order: linear or shuffle (overrides config)")

	return cmd
}

func run(args []string, strategyFlag string) error {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	strategyName := cfg.Strategy
	if strategyFlag != "" {
		strategyName = strategyFlag
	}
	strategy, err := game.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	// Positional path wins over config; with neither, the built-in deck.
	path := cfg.DeckPath
	if len(args) > 0 {
		path = args[0]
	}

	d := deck.Default()
	if path != "" {
		if d, err = deck.Load(path); err != nil {
			log.Error("deck load failed", zap.String("path", path), zap.Error(err))
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m, err := tui.NewModel(d, strategy, log)
	if err != nil {
		return err
	}

	log.Info("session starting",
		zap.String("deck", d.Title),
		zap.Int("cards", d.Size()),
		zap.String("strategy", string(strategy)),
	)

	if err := tui.Run(ctx, m); err != nil {
		log.Error("terminal failure", zap.Error(err))
		return err
	}

	return nil
}
