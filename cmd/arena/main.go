// Package main provides the arena binary: a single console match between the
// player and the enemy roster.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gvd/internal/config"
	"github.com/cory-johannsen/gvd/internal/frontend/console"
	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/dice"
	"github.com/cory-johannsen/gvd/internal/game/match"
	"github.com/cory-johannsen/gvd/internal/game/roster"
	"github.com/cory-johannsen/gvd/internal/observability"
)

const defaultPlayerName = "Hero"

type flags struct {
	configPath string
	name       string
	gear       string
	seed       int64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "arena",
		Short: "Fight the enemy roster in a turn-based console match",
		Long: `Starts one match: pick starting gear, then trade blows with the
Goblin, the Demon Knight and the Angel Guardian until one side falls.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return play(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "path to configuration file; empty = defaults and ARENA_* environment")
	root.Flags().StringVar(&f.name, "name", "", "character name, overrides match.player_name")
	root.Flags().StringVar(&f.gear, "gear", "", "starting gear id, overrides match.player_gear")
	root.Flags().Int64Var(&f.seed, "seed", 0, "random seed, overrides match.seed")

	root.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "Show the starting gear options and the enemy roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return showCatalog(console.NewRenderer(cmd.OutOrStdout(), cfg.Match.Color))
		},
	})
	return root
}

func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if f.name != "" {
		cfg.Match.PlayerName = f.name
	}
	if f.gear != "" {
		cfg.Match.PlayerGear = f.gear
	}
	if cmd.Flags().Changed("seed") {
		cfg.Match.Seed = f.seed
	}
	return cfg, nil
}

func showCatalog(r *console.Renderer) error {
	catalog, err := roster.Default()
	if err != nil {
		return err
	}
	r.Print("Starting gear:")
	for _, spec := range catalog.StartingGear {
		g, err := spec.Build()
		if err != nil {
			return err
		}
		r.Print("")
		r.Print(fmt.Sprintf("[%s]", spec.ID))
		r.Gear(g)
	}
	enemies, err := catalog.Spawn()
	if err != nil {
		return err
	}
	r.Print("")
	r.Print("Enemies:")
	for _, e := range enemies {
		r.Status(match.View(e))
	}
	return r.Err()
}

func play(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	start := time.Now()

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	var src dice.Source
	if cfg.Match.Seed != 0 {
		src = dice.NewSeededSource(cfg.Match.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	roller := dice.NewLoggedRoller(src, logger)

	catalog, err := roster.Default()
	if err != nil {
		logger.Error("loading roster catalog", zap.Error(err))
		return err
	}

	renderer := console.NewRenderer(out, cfg.Match.Color)
	prompter := console.NewPrompter(in, renderer)

	if err := prompter.WaitForStart(ctx); err != nil {
		return inputClosed(logger, err)
	}

	name := cfg.Match.PlayerName
	if name == "" {
		name, err = prompter.AskName(ctx)
		if err != nil {
			return inputClosed(logger, err)
		}
		if name == "" {
			name = defaultPlayerName
		}
	}

	choice := cfg.Match.PlayerGear
	if choice == "" {
		choice, err = prompter.ChooseGear(ctx, catalog.StartingGear)
		if err != nil {
			return inputClosed(logger, err)
		}
	}
	spec, fellBack := catalog.ChooseGear(choice)
	if fellBack {
		renderer.Print("Invalid choice! Defaulting to " + spec.Name)
		logger.Warn("unknown starting gear", zap.String("gear", choice), zap.String("default", spec.ID))
	}

	player, err := catalog.NewPlayer(name, spec)
	if err != nil {
		return fmt.Errorf("creating player: %w", err)
	}
	enemies, err := catalog.Spawn()
	if err != nil {
		return fmt.Errorf("spawning enemies: %w", err)
	}
	renderer.Gear(player.Gear())

	m, err := match.New(player, enemies, prompter, roller,
		match.WithLogger(logger),
		match.WithObserver(combat.Observers{renderer, observability.NewLogObserver(logger)}),
	)
	if err != nil {
		return fmt.Errorf("creating match: %w", err)
	}

	logger.Info("match starting",
		zap.String("player", player.Name),
		zap.String("gear", spec.ID),
		zap.Int("enemies", len(enemies)),
		zap.Int64("seed", cfg.Match.Seed),
		zap.Duration("startup", time.Since(start)),
	)

	res, err := m.Run(ctx)
	if err != nil {
		return inputClosed(logger, err)
	}
	renderer.Result(res)
	renderer.Print("")
	renderer.Print("Thanks for playing!")
	return renderer.Err()
}

// inputClosed treats closed input and interrupts as a normal exit.
func inputClosed(logger *zap.Logger, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		logger.Info("input closed, exiting", zap.Error(err))
		return nil
	}
	return fmt.Errorf("reading player input: %w", err)
}
