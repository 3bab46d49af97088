package service

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type BotService interface {
	ChooseCell(game *entity.Game) (int, error)
	MakeTurn(game *entity.Game) error
}

type botService struct {
	rng *rand.Rand
}

// NewBotService builds the uniform-random move selector. The rng is injected
// so tests can seed it and replay games.
func NewBotService(rng *rand.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

// ChooseCell picks one of the currently empty cells uniformly at random.
func (that *botService) ChooseCell(game *entity.Game) (int, error) {
	availableCells := game.Board.AvailableCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}

// MakeTurn chooses and applies a move for the mark currently on turn.
func (that *botService) MakeTurn(game *entity.Game) error {
	chosenCell, err := that.ChooseCell(game)
	if err != nil {
		return fmt.Errorf("failed to choose cell: %w", err)
	}

	if err = tictactoe.MakeTurn(game, game.PlayerTurn, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
