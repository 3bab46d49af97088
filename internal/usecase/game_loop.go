package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrNoActivePlayer = errors.New("no player configured for the current turn")

type console interface {
	RenderBoard(board entity.Board)
	PromptMove(game *entity.Game, player *entity.Player) (int, error)
	ShowResult(result string)
}

type botService interface {
	MakeTurn(game *entity.Game) error
}

// GameLoop alternates turns between the configured players until the board
// yields a result. It owns the game for the whole session; nothing else
// mutates the board.
type GameLoop struct {
	logger   *slog.Logger
	console  console
	bot      botService
	botDelay time.Duration
}

func NewGameLoop(logger *slog.Logger, console console, bot botService, botDelay time.Duration) *GameLoop {
	return &GameLoop{
		logger: logger.With("component", "game-loop"),

		console:  console,
		bot:      bot,
		botDelay: botDelay,
	}
}

// Run plays the game to completion and returns the result mark, or
// entity.PlayerTie for a draw. The result is re-derived from the board after
// every move, so the loop never requests a move on a finished game.
func (that *GameLoop) Run(ctx context.Context, game *entity.Game) (string, error) {
	that.console.RenderBoard(game.Board)

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("game interrupted: %w", err)
		}

		player := game.ActivePlayer()
		if player == nil {
			return "", fmt.Errorf("%w: mark %s", ErrNoActivePlayer, game.PlayerTurn)
		}

		if player.IsBot() {
			if err := that.waitBotDelay(ctx); err != nil {
				return "", fmt.Errorf("game interrupted: %w", err)
			}

			if err := that.bot.MakeTurn(game); err != nil {
				return "", fmt.Errorf("bot failed to make turn: %w", err)
			}

			that.logger.Debug("bot moved", "game_id", game.ID, "mark", player.Mark)
		} else {
			cell, err := that.console.PromptMove(game, player)
			if err != nil {
				return "", fmt.Errorf("failed to get move: %w", err)
			}

			if err = tictactoe.MakeTurn(game, player.Mark, cell); err != nil {
				// The prompt validates against the live board already, so a
				// rejection here just asks again.
				that.logger.Debug("rejected move", "game_id", game.ID, "error", err)

				continue
			}
		}

		that.console.RenderBoard(game.Board)

		if result := tictactoe.Result(game.Board); result != entity.EmptyCell {
			that.console.ShowResult(result)
			that.logger.Info("game finished", "game_id", game.ID, "result", result)

			return result, nil
		}
	}
}

func (that *GameLoop) waitBotDelay(ctx context.Context) error {
	if that.botDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.botDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
