package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs one game session from configuration to the final result.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Debug("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	term := terminal.New(os.Stdin, os.Stdout)

	xKind, oKind := conf.Players.X, conf.Players.O
	if !conf.Players.IsResolved() {
		var err error
		if xKind, oKind, err = term.PromptGameType(); err != nil {
			return fmt.Errorf("failed to configure players: %w", err)
		}
	}

	game := entity.NewGame(
		uuid.NewString(),
		entity.NewPlayer(entity.PlayerX, xKind),
		entity.NewPlayer(entity.PlayerO, oKind),
	)

	seed := conf.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // game moves need no crypto entropy

	botService := service.NewBotService(rng)
	gameLoop := usecase.NewGameLoop(logger, term, botService, conf.BotDelay)

	log.Debug("Starting game", "game_id", game.ID, "player_x", xKind, "player_o", oKind, "seed", seed)

	result, err := gameLoop.Run(ctx, game)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout, "\nProcess terminated.")
			return nil
		}

		return fmt.Errorf("game loop failed: %w", err)
	}

	log.Debug("Game session finished", "game_id", game.ID, "result", result)

	return nil
}
